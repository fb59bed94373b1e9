package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/content"
)

// About is the biography panel. The pinned region drives the About program;
// each part names the role it plays in it.
func About(a content.About) g.Node {
	return Section(
		ID("about"),
		Class("about"),
		Div(
			Class("about__heading"),
			TitleWords(a.Title, "about__title"),
		),
		Div(
			Class("about__pin"),
			ID("clip"),
			Data("pin", "about"),
			Div(
				Class("about__mask"),
				Data("about-part", "mask"),
				g.If(a.Image != "", Img(Class("about__image"), Src("/static/"+a.Image), Alt("Portrait"), Data("about-part", "image"))),
				Div(
					Class("about__text"),
					Data("about-part", "text"),
					Div(Class("about__lead"), g.Raw(string(a.LeadHTML))),
					g.If(a.More != "", Div(Class("about__more"), g.Raw(string(a.MoreHTML)))),
				),
			),
		),
	)
}
