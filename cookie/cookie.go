package cookie

import (
	"github.com/gofiber/fiber/v2"
)

const (
	consentName     = "cookie_consent"
	faqCategoryName = "faq_category"
)

// GetConsent reports whether the visitor acknowledged the cookie policy
func GetConsent(c *fiber.Ctx) bool {
	return c.Cookies(consentName) == "yes"
}

func SetConsent(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     consentName,
		Value:    "yes",
		MaxAge:   180 * 24 * 60 * 60, // 180 days
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Lax",
	})
}

// GetFAQCategory returns the last FAQ category the visitor picked, or "all"
func GetFAQCategory(c *fiber.Ctx) string {
	return c.Cookies(faqCategoryName, "all")
}

func SetFAQCategory(c *fiber.Ctx, category string) {
	c.Cookie(&fiber.Cookie{
		Name:     faqCategoryName,
		Value:    category,
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
	})
}
