package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/moto-pile/site/config"
)

type navLink struct {
	Path  string
	Title string
}

var mainLinks = []navLink{
	{Path: "/about", Title: "About"},
	{Path: "/faq", Title: "FAQ"},
}

var footerLinks = []navLink{
	{Path: "/about", Title: "About"},
	{Path: "/faq", Title: "FAQ"},
	{Path: "/terms", Title: "Terms"},
	{Path: "/privacy", Title: "Privacy"},
	{Path: "/cookies", Title: "Cookies"},
	{Path: "/sitemap", Title: "Sitemap"},
}

func navItem(link navLink, currentPath string) g.Node {
	class := "text-blue-500 hover:underline"
	if link.Path == currentPath {
		class = "font-semibold text-gray-900"
	}
	return A(Href(link.Path), Class(class), g.Text(link.Title))
}

func navigation(currentPath string) g.Node {
	items := make([]g.Node, 0, len(mainLinks))
	for _, link := range mainLinks {
		items = append(items, navItem(link, currentPath))
	}
	return Nav(
		Class("mb-8 border-b pb-4 flex items-center justify-between w-full"),
		A(Href("/"), Class("text-xl font-bold"), g.Text(config.SiteName)),
		Div(Class("flex items-center space-x-4"), g.Group(items)),
	)
}

func footer() g.Node {
	items := make([]g.Node, 0, len(footerLinks))
	for _, link := range footerLinks {
		items = append(items, A(Href(link.Path), Class("hover:underline"), g.Text(link.Title)))
	}
	return Footer(
		Class("mt-16 border-t pt-4 flex flex-wrap gap-4 text-sm text-gray-500"),
		g.Group(items),
	)
}
