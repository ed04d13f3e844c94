package content

import (
	"context"
	"fmt"
	"log"

	"github.com/moto-pile/site/db"
)

var defaultCategories = []FAQCategory{
	{Slug: "buying", Name: "Buying"},
	{Slug: "selling", Name: "Selling"},
	{Slug: "account", Name: "Account"},
	{Slug: "safety", Name: "Safety"},
}

var defaultFAQs = []FAQ{
	{Category: "buying", Question: "How do I find a motorcycle or scooter?", Answer: "Use the search bar on the home page. You can filter by make, model, year, engine size and location."},
	{Category: "buying", Question: "Can I see a bike before paying?", Answer: "Yes. Arrange a viewing with the seller through messages and always inspect the vehicle and its papers in person."},
	{Category: "buying", Question: "Does Moto Pile handle payments?", Answer: "No. Buyers and sellers settle payment directly. We never ask for card details."},
	{Category: "selling", Question: "How much does it cost to list?", Answer: "Listing a motorcycle, scooter or part is free."},
	{Category: "selling", Question: "How long does an ad stay online?", Answer: "Ads stay active until you delete them or mark the vehicle as sold."},
	{Category: "selling", Question: "What photos should I add?", Answer: "Both sides, the dashboard with the odometer visible, the engine, and any damage. Up to ten photos per ad."},
	{Category: "account", Question: "Why do you need my phone number?", Answer: "We verify every account by text message to keep spam and fake listings off the site."},
	{Category: "account", Question: "How do I delete my account?", Answer: "Open Settings and choose Delete account. Your ads and messages are removed with it."},
	{Category: "safety", Question: "How do I spot a scam?", Answer: "Be wary of prices far below market, sellers who cannot meet in person, and requests to pay by gift card or wire transfer."},
	{Category: "safety", Question: "How do I report an ad?", Answer: "Use the report button on the ad. Our moderators review reports within one business day."},
}

var defaultLegal = []LegalSection{
	{Document: DocumentTerms, Position: 1, Heading: "Acceptance of Terms", Body: "By accessing and using Moto Pile, you accept and agree to be bound by the terms and provisions of this agreement."},
	{Document: DocumentTerms, Position: 2, Heading: "Listings", Body: "Sellers are responsible for the accuracy of their ads, including the vehicle's condition, mileage and ownership."},
	{Document: DocumentTerms, Position: 3, Heading: "Disclaimer", Body: "The materials on Moto Pile are provided on an 'as is' basis. Moto Pile is not a party to any sale between users."},
	{Document: DocumentTerms, Position: 4, Heading: "Limitations", Body: "In no event shall Moto Pile be liable for any damages arising out of the use or inability to use the site."},
	{Document: DocumentTerms, Position: 5, Heading: "Modifications", Body: "Moto Pile may revise these terms at any time. By using this website you agree to the then current version."},
	{Document: DocumentPrivacy, Position: 1, Heading: "Information We Collect", Body: "A username, a verified phone number and, if you choose email notifications, an email address. Nothing else."},
	{Document: DocumentPrivacy, Position: 2, Heading: "How We Use Your Information", Body: "Only for account verification, essential service messages and identifying you to other users."},
	{Document: DocumentPrivacy, Position: 3, Heading: "Information Sharing", Body: "We do not sell, trade or otherwise transfer your personal information to third parties."},
	{Document: DocumentPrivacy, Position: 4, Heading: "Your Rights", Body: "You can access, update or delete your personal information at any time from the Settings page."},
	{Document: DocumentCookies, Position: 1, Heading: "Cookies We Use", Body: "We set a small number of cookies needed for the site to work. We do not use advertising or analytics cookies."},
	{Document: DocumentCookies, Position: 2, Heading: "cookie_consent", Body: "Remembers that you acknowledged this policy. Expires after 180 days."},
	{Document: DocumentCookies, Position: 3, Heading: "faq_category", Body: "Remembers the FAQ category you last selected. Expires after 30 days."},
	{Document: DocumentCookies, Position: 4, Heading: "Session Cookies", Body: "Keep you signed in. They expire when you log out or close your browser."},
}

// Seed writes the default pages, replacing rows with the same keys
func Seed(ctx context.Context) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for i, c := range defaultCategories {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO FAQCategory (slug, name, position) VALUES (?, ?, ?)",
			c.Slug, c.Name, i); err != nil {
			return fmt.Errorf("seed faq category %s: %w", c.Slug, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM FAQ"); err != nil {
		return fmt.Errorf("clear faqs: %w", err)
	}
	for i, f := range defaultFAQs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO FAQ (category, question, answer, position) VALUES (?, ?, ?, ?)",
			f.Category, f.Question, f.Answer, i); err != nil {
			return fmt.Errorf("seed faq %q: %w", f.Question, err)
		}
	}

	for _, s := range defaultLegal {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO LegalSection (document, position, heading, body) VALUES (?, ?, ?, ?)",
			s.Document, s.Position, s.Heading, s.Body); err != nil {
			return fmt.Errorf("seed %s section %d: %w", s.Document, s.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Printf("[content] seeded %d categories, %d faqs, %d legal sections",
		len(defaultCategories), len(defaultFAQs), len(defaultLegal))
	return nil
}
