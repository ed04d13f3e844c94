package handlers

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/moto-pile/site/config"
	"github.com/moto-pile/site/content"
	"github.com/moto-pile/site/local"
	"github.com/moto-pile/site/ui"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// sitemapLinks works without content; it then lists only the fixed pages
func sitemapLinks() ([]content.SitemapLink, time.Time) {
	s, _ := source.Current()
	if s == nil {
		return content.SitemapLinks(nil), time.Now()
	}
	return content.SitemapLinks(s), s.LoadedAt
}

// HandleSitemap serves sitemap.xml
func HandleSitemap(c *fiber.Ctx) error {
	links, lastMod := sitemapLinks()

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]SitemapURL, 0, len(links)),
	}
	for _, l := range links {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        config.BaseURL + l.Path,
			LastMod:    lastMod.UTC().Format("2006-01-02"),
			ChangeFreq: l.ChangeFreq,
			Priority:   l.Priority,
		})
	}

	return c.XML(sitemap)
}

// HandleSitemapPage displays the human-readable sitemap
func HandleSitemapPage(c *fiber.Ctx) error {
	links, _ := sitemapLinks()
	return render(c, ui.SitemapPage(c.Path(), local.GetConsent(c), links))
}
