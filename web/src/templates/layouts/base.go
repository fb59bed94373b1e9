package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/view"
)

// PageConfig carries the document-level settings of a page.
type PageConfig struct {
	Title       string
	SiteName    string
	Description string
	// BodyClass is applied to <body>; the server renders the scroll lock here
	// so the first paint matches the splash gate's initial state.
	BodyClass string
	// BodyAttrs are extra data attributes on <body>.
	BodyAttrs map[string]string
}

// NoScriptCSS undoes the splash gate's initial state when scripts are off.
const NoScriptCSS = `.splash{display:none}body.is-scroll-locked{overflow:auto}#content{opacity:1!important}`

// HTMXSrc is the htmx build the pages load.
const HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"

// Document is the outer HTML document with content inside <body>.
func Document(cfg PageConfig, content ...g.Node) g.Node {
	title := CalculateTitle(cfg.Title, cfg.SiteName)
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(title)),
				h.Meta(h.Name("description"), h.Content(cfg.Description)),
				h.Meta(g.Attr("property", "og:title"), h.Content(title)),
				h.Meta(g.Attr("property", "og:type"), h.Content("website")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src(HTMXSrc), h.Defer()),
				h.Script(h.Src("/static/js/choreo.js"), h.Defer()),
				h.NoScript(h.StyleEl(g.Raw(NoScriptCSS))),
			),
			h.Body(
				g.If(cfg.BodyClass != "", h.Class(cfg.BodyClass)),
				g.Map(sortedKeys(cfg.BodyAttrs), func(k string) g.Node {
					return h.Data(k, cfg.BodyAttrs[k])
				}),
				g.Group(content),
			),
		),
	)
}

// Base renders Document around a templ body.
func Base(cfg PageConfig, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var content g.Node
		if body != nil {
			content = view.AdaptTemplToGomponent(ctx, body)
		}
		return view.AdaptGomponentToTempl(Document(cfg, content)).Render(ctx, w)
	})
}
