package handlers

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/config"
)

// AdminRequired checks the bearer token against config.AdminToken. Admin routes are
// disabled when no token is configured.
func AdminRequired(c *fiber.Ctx) error {
	if config.AdminToken == "" {
		return fiber.ErrNotFound
	}

	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return fiber.ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(config.AdminToken)) != 1 {
		return fiber.ErrForbidden
	}

	return c.Next()
}
