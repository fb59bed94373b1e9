package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/content"
)

// Hero is the full-viewport intro. The nav visibility rule observes it.
func Hero(h content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Data("nav-observe", ""),
		g.If(h.Video != "",
			Video(
				Class("hero__video"),
				AutoPlay(), Muted(), Loop(), PlaysInline(),
				Aria("hidden", "true"),
				Source(Src("/static/"+h.Video), Type("video/mp4")),
			),
		),
		Div(
			Class("hero__top-left"),
			g.If(h.Logo != "", Img(Class("hero__logo"), Src("/static/"+h.Logo), Alt("Logo"))),
			P(Class("hero__intro"), g.Text(h.Intro)),
			A(Class("btn btn--gradient"), Href("#contact"), g.Text("Let's Catch Up?")),
		),
		Div(
			Class("hero__top-right"),
			H1(Class("hero__headline"), headline(h.Headline)),
			P(Class("hero__lede"), g.Text(h.Lede)),
			A(Class("btn btn--gradient"), Href("#journey"), g.Text("Explore My Journey")),
		),
		Div(
			Class("hero__bottom-right"),
			H2(Class("hero__name"), g.Text(h.Name)),
			P(Class("hero__bio"), g.Text(h.Bio)),
			A(Class("btn btn--gradient"), Href("#about"), g.Text("Know More")),
		),
		g.If(h.Image != "",
			Div(Class("hero__image"), Img(Src("/static/"+h.Image), Alt(h.Name))),
		),
	)
}

// headline accents "Laugh" and "Backstory" the way the brand sets them.
func headline(text string) g.Node {
	accents := map[string]string{"laugh": "accent-cyan", "backstory": "accent-orange"}
	words := strings.Fields(text)
	nodes := make([]g.Node, 0, len(words)*2)
	for i, w := range words {
		if i > 0 {
			nodes = append(nodes, g.Text(" "))
		}
		if cls, ok := accents[strings.ToLower(strings.Trim(w, ".,!?"))]; ok {
			nodes = append(nodes, Span(Class(cls), g.Text(w)))
			continue
		}
		nodes = append(nodes, g.Text(w))
	}
	return g.Group(nodes)
}
