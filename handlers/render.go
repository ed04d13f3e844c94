package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// isHTMX reports whether the request came from htmx and expects a fragment
func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
