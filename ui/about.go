package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/moto-pile/site/config"
)

func AboutPage(path string, consent bool) g.Node {
	return Page(
		"About",
		path,
		consent,
		[]g.Node{
			pageHeader("About " + config.SiteName),
			contentContainer(
				prose(
					paragraph(config.SiteName+" is a marketplace for motorcycles, scooters, mopeds and the parts that keep them running."),

					sectionHeading("What We Do"),
					P(Class("mb-4"), g.Text("We provide a simple, secure platform where riders can:")),
					Ul(Class("ml-4 mb-4 space-y-2"),
						Li(g.Text("• List bikes, scooters and parts for sale")),
						Li(g.Text("• Search by make, model, year and engine size")),
						Li(g.Text("• Message sellers without sharing a phone number")),
						Li(g.Text("• Bookmark listings to come back to later")),
					),

					sectionHeading("Privacy First"),
					P(Class("mb-4"),
						g.Text("We collect only what we need to run the site: no real names, addresses or payment details. "),
						A(Href("/privacy"), Class("text-blue-600 hover:text-blue-800 underline"), g.Text("Learn more about our privacy practices")),
						g.Text("."),
					),

					sectionHeading("Questions?"),
					P(Class("mb-4"),
						g.Text("Most answers are in the "),
						A(Href("/faq"), Class("text-blue-600 hover:text-blue-800 underline"), g.Text("FAQ")),
						g.Text(". For anything else, reach out to our support team through the website."),
					),
				),
			),
		},
	)
}
