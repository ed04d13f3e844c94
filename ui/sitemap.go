package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/moto-pile/site/content"
)

func SitemapPage(path string, consent bool, links []content.SitemapLink) g.Node {
	items := make([]g.Node, 0, len(links))
	for _, l := range links {
		items = append(items, Li(
			A(Href(l.Path), Class("text-blue-600 hover:text-blue-800 underline"), g.Text(l.Title)),
		))
	}

	return Page(
		"Sitemap",
		path,
		consent,
		[]g.Node{
			pageHeader("Sitemap"),
			contentContainer(
				Ul(Class("ml-4 space-y-2"), g.Group(items)),
			),
		},
	)
}
