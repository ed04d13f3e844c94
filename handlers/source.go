package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/async"
	"github.com/moto-pile/site/content"
)

// ContentSource provides the page content. *content.Loader implements it.
type ContentSource interface {
	Current() (*content.Snapshot, async.State[*content.Snapshot])
	Refresh() error
	Stats() map[string]any
}

var source ContentSource

// SetContentSource sets where handlers read page content from
func SetContentSource(s ContentSource) {
	source = s
}

// currentContent returns the snapshot to render, or a 503 when nothing was loaded yet
func currentContent() (*content.Snapshot, async.State[*content.Snapshot], error) {
	s, st := source.Current()
	if s == nil {
		if st.Status == async.StatusError {
			return nil, st, fiber.NewError(fiber.StatusServiceUnavailable, "Content is temporarily unavailable, please try again later")
		}
		return nil, st, fiber.NewError(fiber.StatusServiceUnavailable, "Content is loading, please try again in a moment")
	}
	return s, st, nil
}
