package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// settings is the environment shape of the values below.
type settings struct {
	SiteName    string `env:"SITE_NAME" envDefault:"Moto Pile"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://moto-pile.com"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"project.db"`

	ServerPort         string        `env:"PORT" envDefault:"8080"`
	ServerRateLimitMax int           `env:"RATE_LIMIT_MAX" envDefault:"120"`
	ServerRateLimitExp time.Duration `env:"RATE_LIMIT_EXPIRATION" envDefault:"1m"`
	ServerReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	ServerWriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`

	ContentRefreshInterval time.Duration `env:"CONTENT_REFRESH_INTERVAL" envDefault:"10m"`
	ContentRefreshEvery    time.Duration `env:"CONTENT_REFRESH_MIN_GAP" envDefault:"5s"`
	ContentRefreshBurst    int           `env:"CONTENT_REFRESH_BURST" envDefault:"3"`
	ContentCacheTTL        time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"24h"`

	AdminToken        string        `env:"ADMIN_TOKEN"`
	AdminRateLimitMax int           `env:"ADMIN_RATE_LIMIT_MAX" envDefault:"10"`
	AdminRateLimitExp time.Duration `env:"ADMIN_RATE_LIMIT_EXPIRATION" envDefault:"1m"`

	TailwindCSSURL string `env:"TAILWIND_CSS_URL" envDefault:"https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"`
	HTMXURL        string `env:"HTMX_URL" envDefault:"https://unpkg.com/htmx.org@1.9.12"`
}

var (
	SiteName    string
	BaseURL     string
	DatabaseURL string

	ServerPort         string
	ServerRateLimitMax int
	ServerRateLimitExp time.Duration
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// ContentRefreshInterval is how often the content loader reloads from the database.
	ContentRefreshInterval time.Duration
	// ContentRefreshEvery and ContentRefreshBurst throttle manual refreshes.
	ContentRefreshEvery time.Duration
	ContentRefreshBurst int
	// ContentCacheTTL bounds how long the last good snapshot is served while reloads fail.
	ContentCacheTTL time.Duration

	// AdminToken guards the refresh endpoint. Empty disables it.
	AdminToken string
	// AdminRateLimitMax requests per AdminRateLimitExp are allowed per IP on admin routes.
	AdminRateLimitMax int
	AdminRateLimitExp time.Duration

	TailwindCSSURL string
	HTMXURL        string
)

func init() {
	// The .env file is optional
	_ = godotenv.Load()

	var s settings
	if err := env.Parse(&s); err != nil {
		log.Fatalf("[config] failed to parse environment: %v", err)
	}
	apply(s)
}

func apply(s settings) {
	SiteName = s.SiteName
	BaseURL = s.BaseURL
	DatabaseURL = s.DatabaseURL

	ServerPort = s.ServerPort
	ServerRateLimitMax = s.ServerRateLimitMax
	ServerRateLimitExp = s.ServerRateLimitExp
	ServerReadTimeout = s.ServerReadTimeout
	ServerWriteTimeout = s.ServerWriteTimeout

	ContentRefreshInterval = s.ContentRefreshInterval
	ContentRefreshEvery = s.ContentRefreshEvery
	ContentRefreshBurst = s.ContentRefreshBurst
	ContentCacheTTL = s.ContentCacheTTL

	AdminToken = s.AdminToken
	AdminRateLimitMax = s.AdminRateLimitMax
	AdminRateLimitExp = s.AdminRateLimitExp

	TailwindCSSURL = s.TailwindCSSURL
	HTMXURL = s.HTMXURL
}
