package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/navbar"
)

// NavBar is the fixed overlay bar with the full-screen menu. The script hides
// it while the hero is in view and locks scrolling while the menu is open.
func NavBar(brand, logo string, items []string) g.Node {
	return Header(
		ID("navbar"),
		Class("navbar"),
		Data("nav", ""),
		Div(
			Class("navbar__inner"),
			A(Class("navbar__logo"), Href("#hero"),
				g.If(logo != "", Img(Src("/static/"+logo), Alt(brand))),
				g.If(logo == "", g.Text(brand)),
			),
			Button(
				Type("button"),
				Class("navbar__toggle"),
				Aria("controls", "nav-menu"),
				Aria("expanded", "false"),
				Aria("label", "Open menu"),
				Data("menu-toggle", ""),
				Span(Class("navbar__bar")),
				Span(Class("navbar__bar")),
				Span(Class("navbar__bar")),
			),
		),
		Nav(
			ID("nav-menu"),
			Class("navbar__menu"),
			Aria("hidden", "true"),
			Ul(
				g.Group(g.Map(items, func(item string) g.Node {
					return Li(A(Href(navbar.Anchor(item)), Data("menu-link", ""), g.Text(item)))
				})),
			),
		),
	)
}
