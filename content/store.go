package content

import (
	"context"
	"fmt"
	"time"

	"github.com/moto-pile/site/db"
)

// GetFAQCategories returns the FAQ categories in display order
func GetFAQCategories(ctx context.Context) ([]FAQCategory, error) {
	rows, err := db.QueryContext(ctx, "SELECT slug, name FROM FAQCategory ORDER BY position, slug")
	if err != nil {
		return nil, fmt.Errorf("query faq categories: %w", err)
	}
	defer rows.Close()

	var categories []FAQCategory
	for rows.Next() {
		var c FAQCategory
		if err := rows.Scan(&c.Slug, &c.Name); err != nil {
			return nil, fmt.Errorf("scan faq category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetFAQs returns every FAQ entry in display order
func GetFAQs(ctx context.Context) ([]FAQ, error) {
	rows, err := db.QueryContext(ctx, `SELECT FAQ.id, FAQ.category, FAQ.question, FAQ.answer FROM FAQ
	JOIN FAQCategory ON FAQ.category = FAQCategory.slug
	ORDER BY FAQCategory.position, FAQ.position, FAQ.id`)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	var faqs []FAQ
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.Category, &f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// GetLegalSections returns every legal section grouped by document
func GetLegalSections(ctx context.Context) (map[Document][]LegalSection, error) {
	rows, err := db.QueryContext(ctx, "SELECT document, position, heading, body FROM LegalSection ORDER BY document, position")
	if err != nil {
		return nil, fmt.Errorf("query legal sections: %w", err)
	}
	defer rows.Close()

	legal := make(map[Document][]LegalSection)
	for rows.Next() {
		var s LegalSection
		if err := rows.Scan(&s.Document, &s.Position, &s.Heading, &s.Body); err != nil {
			return nil, fmt.Errorf("scan legal section: %w", err)
		}
		legal[s.Document] = append(legal[s.Document], s)
	}
	return legal, rows.Err()
}

// LoadSnapshot reads all page content. It checks ctx between queries so a superseded
// load stops early.
func LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	categories, err := GetFAQCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	faqs, err := GetFAQs(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	legal, err := GetLegalSections(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Categories: categories,
		FAQs:       faqs,
		Legal:      legal,
		LoadedAt:   time.Now(),
	}, nil
}
