package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/moto-pile/site/async"
	"github.com/moto-pile/site/content"
)

// LegalPage renders terms, privacy or cookie policy from its sections
func LegalPage(path string, consent bool, doc content.Document, sections []content.LegalSection, status async.Status, err error) g.Node {
	body := []g.Node{
		H2(Class("text-xl font-semibold mb-4"), g.Text(doc.Title())),
	}
	for i, s := range sections {
		body = append(body,
			sectionHeading(fmt.Sprintf("%d. %s", i+1, s.Heading)),
			paragraph(s.Body),
		)
	}

	return Page(
		doc.Title(),
		path,
		consent,
		[]g.Node{
			pageHeader(doc.Title()),
			contentContainer(
				ContentStatus(status, err),
				prose(body...),
				g.If(doc == content.DocumentCookies && !consent, cookieAcceptPanel()),
			),
		},
	)
}

func cookieAcceptPanel() g.Node {
	return Form(
		Method("post"),
		Action("/api/cookie-consent"),
		Class("mt-8"),
		styledButton("Accept cookies", buttonPrimary, Type("submit")),
	)
}
