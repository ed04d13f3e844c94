package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/async"
	"github.com/moto-pile/site/content"
)

// HandleContentAPI returns the served snapshot with the loader state
func HandleContentAPI(c *fiber.Ctx) error {
	s, st, err := currentContent()
	if err != nil {
		return err
	}
	resp := fiber.Map{
		"status":  st.Status,
		"content": s,
	}
	if st.Err != nil {
		resp["error"] = st.Err.Error()
	}
	return c.JSON(resp)
}

// HandleContentRefresh starts a reload in the background
func HandleContentRefresh(c *fiber.Ctx) error {
	err := source.Refresh()
	switch {
	case err == nil:
		_, st := source.Current()
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"status":  st.Status,
			"attempt": st.Attempt,
		})
	case errors.Is(err, content.ErrRefreshThrottled):
		return fiber.NewError(fiber.StatusTooManyRequests, "Refresh requested too often, try again shortly")
	case errors.Is(err, async.ErrDisposed):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Server is shutting down")
	default:
		return err
	}
}
