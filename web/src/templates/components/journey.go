package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/content"
)

// Journey is the milestone timeline. Cards reveal once, in order; the fill
// line and title follow the section's scroll progress.
func Journey(j content.Journey) g.Node {
	return Section(
		ID("journey"),
		Class("journey"),
		Data("section-tracks", "journey"),
		Div(Class("journey__grid"), Data("track", "backgroundY"), Aria("hidden", "true")),
		g.If(j.Particles, Div(Class("journey__particles"), Data("particles", "30"), Aria("hidden", "true"))),
		Div(
			Class("journey__heading"),
			Div(Data("track", "titleY titleOpacity titleScale titleRotate"), CharWave(j.Title, "journey__title")),
			g.If(j.Subtitle != "", P(Class("journey__subtitle"), Data("track", "subtitleX subtitleOpacity"), g.Text(j.Subtitle))),
		),
		Div(
			Class("journey__timeline"),
			Div(Class("journey__line"), Div(Class("journey__fill"), Data("track", "timelineFill"))),
			Ol(
				Class("journey__cards"),
				Data("reveal-group", "journey"),
				g.Group(g.Map(journeyCards(j.Cards), journeyCard)),
			),
		),
	)
}

type indexedCard struct {
	i    int
	card content.JourneyCard
}

func journeyCards(cards []content.JourneyCard) []indexedCard {
	out := make([]indexedCard, len(cards))
	for i, c := range cards {
		out[i] = indexedCard{i, c}
	}
	return out
}

func journeyCard(c indexedCard) g.Node {
	side := "left"
	if c.i%2 != 0 {
		side = "right"
	}
	return Li(
		Class("journey-card journey-card--"+side),
		Data("reveal", "journey"),
		Data("index", strconv.Itoa(c.i)),
		Data("color", c.card.Color),
		g.Attr("tabindex", "0"),
		g.Attr("style", "--card-color: "+c.card.Color),
		Span(Class("journey-card__dot"), Aria("hidden", "true")),
		Div(
			Class("journey-card__body"),
			g.If(c.card.Image != "", Img(Class("journey-card__image"), Src("/static/"+c.card.Image), Alt(c.card.Title), g.Attr("loading", "lazy"))),
			H3(Class("journey-card__title"), g.Text(c.card.Title)),
			Div(Class("journey-card__text"), g.Raw(string(c.card.DescriptionHTML))),
		),
	)
}
