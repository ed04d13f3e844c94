package handlers

import "github.com/gofiber/fiber/v2"

// HandleHome sends visitors to the About page; listings are served by the marketplace app
func HandleHome(c *fiber.Ctx) error {
	return c.Redirect("/about", fiber.StatusFound)
}
