package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/content"
	"github.com/moto-pile/site/cookie"
	"github.com/moto-pile/site/local"
	"github.com/moto-pile/site/ui"
)

// HandleFAQ displays the FAQ filtered by the category and q query parameters
func HandleFAQ(c *fiber.Ctx) error {
	s, st, err := currentContent()
	if err != nil {
		return err
	}
	category, err := faqCategory(c, s)
	if err != nil {
		return err
	}
	query := c.Query("q")

	entries := content.FilterFAQ(s.FAQs, category, query)
	return render(c, ui.FAQPage(c.Path(), local.GetConsent(c), s.Categories, entries, category, query, st.Status, st.Err))
}

// HandleFAQList returns only the filtered list, for htmx swaps
func HandleFAQList(c *fiber.Ctx) error {
	s, _, err := currentContent()
	if err != nil {
		return err
	}
	category, err := faqCategory(c, s)
	if err != nil {
		return err
	}
	return render(c, ui.FAQList(content.FilterFAQ(s.FAQs, category, c.Query("q"))))
}

// faqCategory resolves the requested category and remembers it. An unknown category in
// the query is a 404; a stale one in the cookie falls back to all.
func faqCategory(c *fiber.Ctx, s *content.Snapshot) (string, error) {
	category := c.Query("category")
	if category == "" {
		category = cookie.GetFAQCategory(c)
		if _, ok := s.Category(category); !ok {
			category = content.CategoryAll
		}
		return category, nil
	}

	if category != content.CategoryAll {
		if _, ok := s.Category(category); !ok {
			return "", fiber.NewError(fiber.StatusNotFound, "Unknown FAQ category")
		}
	}
	cookie.SetFAQCategory(c, category)
	return category, nil
}
