package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/web/src/templates/components"
)

// HomeData is everything the single page renders from.
type HomeData struct {
	Site *content.Site
	// Tab is the podcast tab to open with.
	Tab      string
	Contact  components.ContactState
	Manifest any
	Year     int
}

// Home is the whole site: splash, nav and every section in scroll order.
func Home(d HomeData) g.Node {
	s := d.Site
	brand := s.Meta.Brand
	if brand == "" {
		brand = s.Meta.Name
	}
	return g.Group([]g.Node{
		components.Splash(s.Meta.SplashVideo),
		components.NavBar(brand, s.Hero.Logo, s.Nav),
		Main(
			ID("content"),
			Class("content"),
			Data("content", ""),
			components.Hero(s.Hero),
			components.About(s.About),
			components.Journey(s.Journey),
			components.Podcast(s.Podcast, d.Tab),
			components.Contact(s.Contact, d.Contact),
		),
		components.PageFooter(s.Meta.Name, s.Socials, d.Year),
		components.ManifestScript(d.Manifest),
	})
}
