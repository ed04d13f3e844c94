package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/moto-pile/site/config"
)

// ---- Page Layout ----

// Page wraps content in the site chrome. The cookie banner is shown until the visitor
// gives consent.
func Page(title string, currentPath string, consent bool, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title + " - " + config.SiteName,
		Description: config.SiteName + " - buy and sell motorcycles, scooters and parts",
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Link(Rel("stylesheet"), Href(config.TailwindCSSURL)),
			Script(Type("text/javascript"), Src(config.HTMXURL), Defer()),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8"),
				navigation(currentPath),
				g.Group(content),
				footer(),
			),
			g.If(!consent, consentBanner()),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
