package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/local"
	"github.com/moto-pile/site/ui"
)

// HandleAbout displays the About page
func HandleAbout(c *fiber.Ctx) error {
	return render(c, ui.AboutPage(c.Path(), local.GetConsent(c)))
}
