package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/cookie"
	"github.com/moto-pile/site/local"
	"github.com/moto-pile/site/ui"
)

// ConsentMiddleware exposes the visitor's cookie consent to handlers
func ConsentMiddleware(c *fiber.Ctx) error {
	local.SetConsent(c, cookie.GetConsent(c))
	return c.Next()
}

// HandleCookieConsent records consent. htmx requests get an empty fragment to replace the
// banner; plain form posts go back to the cookie policy.
func HandleCookieConsent(c *fiber.Ctx) error {
	cookie.SetConsent(c)
	if isHTMX(c) {
		return render(c, ui.EmptyResponse())
	}
	return c.Redirect("/cookies", fiber.StatusSeeOther)
}
