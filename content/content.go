package content

import (
	"errors"
	"time"
)

// ErrNotFound is returned for unknown documents and categories
var ErrNotFound = errors.New("content not found")

// CategoryAll matches every FAQ category
const CategoryAll = "all"

type FAQCategory struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type FAQ struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Document is one of the legal pages
type Document string

const (
	DocumentTerms   Document = "terms"
	DocumentPrivacy Document = "privacy"
	DocumentCookies Document = "cookies"
)

// Documents lists the legal documents in display order
var Documents = []Document{DocumentTerms, DocumentPrivacy, DocumentCookies}

// ParseDocument maps a slug to a Document
func ParseDocument(slug string) (Document, error) {
	for _, d := range Documents {
		if string(d) == slug {
			return d, nil
		}
	}
	return "", ErrNotFound
}

// Title returns the page title for the document
func (d Document) Title() string {
	switch d {
	case DocumentTerms:
		return "Terms of Service"
	case DocumentPrivacy:
		return "Privacy Policy"
	case DocumentCookies:
		return "Cookie Policy"
	default:
		return "Legal"
	}
}

type LegalSection struct {
	Document Document `json:"document"`
	Position int      `json:"position"`
	Heading  string   `json:"heading"`
	Body     string   `json:"body"`
}

// Snapshot is everything the informational pages render, read in one pass
type Snapshot struct {
	Categories []FAQCategory               `json:"categories"`
	FAQs       []FAQ                       `json:"faqs"`
	Legal      map[Document][]LegalSection `json:"legal"`
	LoadedAt   time.Time                   `json:"loaded_at"`
}

// LegalDocument returns the sections of d in order
func (s *Snapshot) LegalDocument(d Document) ([]LegalSection, error) {
	sections, ok := s.Legal[d]
	if !ok || len(sections) == 0 {
		return nil, ErrNotFound
	}
	return sections, nil
}

// Category looks up an FAQ category by slug
func (s *Snapshot) Category(slug string) (FAQCategory, bool) {
	for _, c := range s.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return FAQCategory{}, false
}

// cost approximates the snapshot's memory footprint for the cache
func (s *Snapshot) cost() int64 {
	var n int
	for _, f := range s.FAQs {
		n += len(f.Question) + len(f.Answer) + 32
	}
	for _, sections := range s.Legal {
		for _, sec := range sections {
			n += len(sec.Heading) + len(sec.Body) + 32
		}
	}
	return int64(n + len(s.Categories)*64)
}
