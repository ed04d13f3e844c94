package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/content"
	"github.com/moto-pile/site/local"
	"github.com/moto-pile/site/ui"
)

// HandleTermsOfService displays the Terms of Service page
func HandleTermsOfService(c *fiber.Ctx) error {
	return handleLegal(c, content.DocumentTerms)
}

// HandlePrivacyPolicy displays the Privacy Policy page
func HandlePrivacyPolicy(c *fiber.Ctx) error {
	return handleLegal(c, content.DocumentPrivacy)
}

// HandleCookiePolicy displays the Cookie Policy page
func HandleCookiePolicy(c *fiber.Ctx) error {
	return handleLegal(c, content.DocumentCookies)
}

func handleLegal(c *fiber.Ctx, doc content.Document) error {
	s, st, err := currentContent()
	if err != nil {
		return err
	}
	sections, err := s.LegalDocument(doc)
	if err != nil {
		return err
	}
	return render(c, ui.LegalPage(c.Path(), local.GetConsent(c), doc, sections, st.Status, st.Err))
}
