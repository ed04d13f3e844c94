package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/async"
	"github.com/moto-pile/site/db"
)

// HandleHealth reports database connectivity and the content loader state
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
	}
	code := fiber.StatusOK

	if err := db.Ping(c.UserContext()); err != nil {
		health["status"] = "unhealthy"
		health["database"] = "down"
		code = fiber.StatusServiceUnavailable
	} else {
		health["database"] = "up"
	}

	s, st := source.Current()
	loader := fiber.Map{
		"status":  st.Status,
		"attempt": st.Attempt,
		"cache":   source.Stats(),
	}
	if st.Status == async.StatusError {
		loader["error"] = st.Err.Error()
	}
	if s != nil {
		loader["loaded_at"] = s.LoadedAt
	} else {
		health["status"] = "unhealthy"
		code = fiber.StatusServiceUnavailable
	}
	health["content"] = loader

	return c.Status(code).JSON(health)
}
