package content

import "strings"

// FilterFAQ returns the entries in category whose question or answer contains query,
// ignoring case. An empty category or CategoryAll matches every entry, as does an empty
// query.
func FilterFAQ(entries []FAQ, category, query string) []FAQ {
	query = strings.ToLower(strings.TrimSpace(query))
	matchAll := category == "" || category == CategoryAll

	filtered := make([]FAQ, 0, len(entries))
	for _, f := range entries {
		if !matchAll && f.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(f.Question), query) &&
			!strings.Contains(strings.ToLower(f.Answer), query) {
			continue
		}
		filtered = append(filtered, f)
	}
	return filtered
}

type SitemapLink struct {
	Path       string
	Title      string
	ChangeFreq string
	Priority   string
}

var sitePages = []SitemapLink{
	{Path: "/", Title: "Home", ChangeFreq: "daily", Priority: "1.0"},
	{Path: "/about", Title: "About", ChangeFreq: "monthly", Priority: "0.6"},
	{Path: "/faq", Title: "FAQ", ChangeFreq: "weekly", Priority: "0.6"},
	{Path: "/sitemap", Title: "Sitemap", ChangeFreq: "weekly", Priority: "0.3"},
	{Path: "/terms", Title: DocumentTerms.Title(), ChangeFreq: "yearly", Priority: "0.3"},
	{Path: "/privacy", Title: DocumentPrivacy.Title(), ChangeFreq: "yearly", Priority: "0.3"},
	{Path: "/cookies", Title: DocumentCookies.Title(), ChangeFreq: "yearly", Priority: "0.3"},
}

// SitemapLinks lists the site's pages followed by one FAQ link per category. A nil
// snapshot yields only the fixed pages.
func SitemapLinks(s *Snapshot) []SitemapLink {
	links := append([]SitemapLink(nil), sitePages...)
	if s == nil {
		return links
	}
	for _, c := range s.Categories {
		links = append(links, SitemapLink{
			Path:       "/faq?category=" + c.Slug,
			Title:      "FAQ: " + c.Name,
			ChangeFreq: "weekly",
			Priority:   "0.4",
		})
	}
	return links
}
