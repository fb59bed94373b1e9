package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/splash"
)

// Splash is the full-screen intro video shown before the page content. The
// page starts in the playing view; the browser script drives the transitions
// from the manifest. Without JavaScript the noscript rule hides the overlay.
func Splash(video string) g.Node {
	view := splash.ViewFor(splash.StatePlaying, true)
	return Div(
		ID("splash"),
		Class("splash"),
		Data("splash", string(splash.StatePlaying)),
		g.Attr("style", splashStyle(view)),
		Video(
			Class("splash__video"),
			Data("splash-video", ""),
			AutoPlay(), Muted(), PlaysInline(),
			g.Attr("preload", "auto"),
			Source(Src("/static/"+video), Type("video/mp4")),
		),
		Button(
			Type("button"),
			Class("splash__skip"),
			Data("splash-skip", ""),
			g.Text("Skip intro"),
		),
	)
}

func splashStyle(v splash.View) string {
	if v.LoaderOpacity >= 1 {
		return "opacity: 1"
	}
	return "opacity: 0"
}
