package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/content"
	"github.com/moto-pile/site/ui"
)

// CustomErrorHandler renders errors as a page, or as JSON under /api
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Something went wrong"

	var e *fiber.Error
	switch {
	case errors.As(err, &e):
		code = e.Code
		message = e.Message
	case errors.Is(err, content.ErrNotFound):
		code = fiber.StatusNotFound
		message = "Page not found"
	default:
		log.Printf("[handlers] %s %s: %v", c.Method(), c.Path(), err)
	}

	c.Status(code)
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.JSON(fiber.Map{"error": message})
	}
	return render(c, ui.ErrorPage(code, message))
}
