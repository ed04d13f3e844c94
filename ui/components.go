package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/moto-pile/site/async"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}

func prose(content ...g.Node) g.Node {
	return Div(Class("prose max-w-none"), g.Group(content))
}

func sectionHeading(text string) g.Node {
	return H3(Class("text-lg font-semibold mb-2"), g.Text(text))
}

func paragraph(text string) g.Node {
	return P(Class("mb-4"), g.Text(text))
}

// ---- Button Components ----

type ButtonVariant string

const (
	buttonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

func getButtonClass(variant ButtonVariant) string {
	baseClass := "px-4 py-2 rounded inline-block "
	switch variant {
	case ButtonSecondary:
		return baseClass + "text-blue-500 hover:underline"
	default:
		return baseClass + "bg-blue-500 text-white hover:bg-blue-600"
	}
}

func styledButton(text string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Class(getButtonClass(variant))}, attrs...)
	return Button(append(allAttrs, g.Text(text))...)
}

func styledLink(text string, href string, variant ButtonVariant, attrs ...g.Node) g.Node {
	allAttrs := append([]g.Node{Href(href), Class(getButtonClass(variant))}, attrs...)
	return A(append(allAttrs, g.Text(text))...)
}

// ---- Message Components ----

func consentBanner() g.Node {
	return Div(
		ID("cookie-banner"),
		Class("fixed bottom-0 inset-x-0 bg-gray-900 text-white px-4 py-3 flex items-center justify-between"),
		Span(
			g.Text("We only use cookies the site needs to work. "),
			A(Href("/cookies"), Class("underline"), g.Text("Cookie Policy")),
		),
		styledButton("OK", buttonPrimary,
			hx.Post("/api/cookie-consent"),
			hx.Target("#cookie-banner"),
			hx.Swap("outerHTML"),
		),
	)
}

// ContentStatus tells the visitor when the page is served from a stale or loading copy.
// It renders nothing once the latest load succeeded.
func ContentStatus(status async.Status, err error) g.Node {
	switch status {
	case async.StatusPending:
		return Div(
			ID("content-status"),
			Class("bg-blue-50 border border-blue-200 text-blue-800 px-4 py-2 rounded mb-4 text-sm"),
			g.Text("Refreshing content..."),
		)
	case async.StatusError:
		return Div(
			ID("content-status"),
			Class("bg-yellow-50 border border-yellow-300 text-yellow-800 px-4 py-2 rounded mb-4 text-sm"),
			g.Text("Content could not be refreshed, showing the last saved version."),
			g.Iff(err != nil, func() g.Node {
				return P(Class("mt-1 text-xs"), g.Text(err.Error()))
			}),
		)
	default:
		return nil
	}
}

// EmptyResponse is swapped in to remove an element
func EmptyResponse() g.Node {
	return g.Text("")
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"",   // no current path
		true, // never show the cookie banner on error pages
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			contentContainer(
				P(Class("mb-8"), g.Text(message)),
				styledLink("Back to Home", "/", buttonPrimary),
			),
		},
	)
}
