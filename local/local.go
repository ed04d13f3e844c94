package local

import "github.com/gofiber/fiber/v2"

func GetConsent(c *fiber.Ctx) bool {
	consent, _ := c.Locals("cookieConsent").(bool)
	return consent
}

func SetConsent(c *fiber.Ctx, consent bool) {
	c.Locals("cookieConsent", consent)
}
