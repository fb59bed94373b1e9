package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/content"
)

// PageFooter closes the page with the copyright line and social links.
func PageFooter(name string, socials []content.Social, year int) g.Node {
	return Footer(
		ID("footer"),
		Class("footer"),
		P(Class("footer__copy"), g.Text("© "+strconv.Itoa(year)+" "+name+". All rights reserved.")),
		g.If(len(socials) > 0, Ul(
			Class("footer__socials"),
			g.Group(g.Map(socials, func(s content.Social) g.Node {
				return Li(A(
					Href(s.Href),
					Target("_blank"),
					Rel("noopener noreferrer"),
					Aria("label", s.Name),
					g.Text(s.Name),
				))
			})),
		)),
	)
}
