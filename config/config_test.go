package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var s settings
	require.NoError(t, env.ParseWithOptions(&s, env.Options{Environment: map[string]string{}}))

	assert.Equal(t, "Moto Pile", s.SiteName)
	assert.Equal(t, "8080", s.ServerPort)
	assert.Equal(t, 10*time.Minute, s.ContentRefreshInterval)
	assert.Equal(t, 3, s.ContentRefreshBurst)
	assert.Empty(t, s.AdminToken)
}

func TestApplyFromEnvironment(t *testing.T) {
	var s settings
	err := env.ParseWithOptions(&s, env.Options{Environment: map[string]string{
		"PORT":                     "9090",
		"DATABASE_URL":             "file::memory:",
		"CONTENT_REFRESH_INTERVAL": "30s",
		"ADMIN_TOKEN":              "secret",
	}})
	require.NoError(t, err)

	apply(s)
	t.Cleanup(func() {
		var d settings
		_ = env.ParseWithOptions(&d, env.Options{Environment: map[string]string{}})
		apply(d)
	})

	assert.Equal(t, "9090", ServerPort)
	assert.Equal(t, "file::memory:", DatabaseURL)
	assert.Equal(t, 30*time.Second, ContentRefreshInterval)
	assert.Equal(t, "secret", AdminToken)
}

func TestInvalidDuration(t *testing.T) {
	var s settings
	err := env.ParseWithOptions(&s, env.Options{Environment: map[string]string{
		"RATE_LIMIT_EXPIRATION": "soon",
	}})
	assert.Error(t, err)
}
