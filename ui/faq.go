package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/moto-pile/site/async"
	"github.com/moto-pile/site/content"
)

// FAQPage renders the FAQ with its category filter. entries are already filtered.
func FAQPage(path string, consent bool, categories []content.FAQCategory, entries []content.FAQ, category, query string, status async.Status, err error) g.Node {
	return Page(
		"FAQ",
		path,
		consent,
		[]g.Node{
			pageHeader("Frequently Asked Questions"),
			contentContainer(
				ContentStatus(status, err),
				faqFilter(categories, category, query),
				Div(
					ID("faq-list"),
					FAQList(entries),
				),
			),
		},
	)
}

func faqFilter(categories []content.FAQCategory, selected, query string) g.Node {
	options := []g.Node{
		Option(Value(content.CategoryAll), g.Text("All topics"), g.If(selected == content.CategoryAll || selected == "", Selected())),
	}
	for _, c := range categories {
		options = append(options, Option(Value(c.Slug), g.Text(c.Name), g.If(c.Slug == selected, Selected())))
	}

	return Form(
		ID("faq-filter"),
		Class("flex gap-2 mb-6"),
		Action("/faq"),
		Method("get"),
		hx.Get("/faq/list"),
		hx.Target("#faq-list"),
		hx.Trigger("change, keyup changed delay:300ms from:#faq-query"),
		Select(
			Name("category"),
			Class("p-2 border rounded"),
			g.Group(options),
		),
		Input(
			Type("search"),
			ID("faq-query"),
			Name("q"),
			Value(query),
			Placeholder("Search questions"),
			Class("flex-1 p-2 border rounded"),
		),
		styledButton("Filter", ButtonSecondary, Type("submit")),
	)
}

// FAQList renders the question and answer pairs, or a notice when nothing matched
func FAQList(entries []content.FAQ) g.Node {
	if len(entries) == 0 {
		return P(Class("text-gray-600"), g.Text("No questions match your search."))
	}

	items := make([]g.Node, 0, len(entries))
	for _, f := range entries {
		items = append(items, Details(
			Class("border rounded p-4"),
			Summary(Class("font-semibold cursor-pointer"), g.Text(f.Question)),
			P(Class("mt-2 text-gray-700"), g.Text(f.Answer)),
		))
	}
	return Div(Class("space-y-3"), g.Group(items))
}
