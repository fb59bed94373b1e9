package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Error is the page shown for failed full-page requests.
func Error(code int, message string) g.Node {
	return Main(
		Class("error-page"),
		H1(g.Text(strconv.Itoa(code))),
		P(g.Text(message)),
		A(Class("btn btn--gradient"), Href("/"), g.Text("Back to the start")),
	)
}
