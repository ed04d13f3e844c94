package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/moto-pile/site/config"
)

// GlobalRateLimiter is the global rate limiter middleware
var GlobalRateLimiter = limiter.New(limiter.Config{
	Max:        config.ServerRateLimitMax,
	Expiration: config.ServerRateLimitExp,
})

// AdminRateLimiter limits admin API calls per IP, so guessing the token is slow
var AdminRateLimiter = limiter.New(limiter.Config{
	Max:        config.AdminRateLimitMax,
	Expiration: config.AdminRateLimitExp,
	KeyGenerator: func(c *fiber.Ctx) string {
		return c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTooManyRequests, "Too many admin requests, please try again later")
	},
})
