package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/backstory/internal/content"
)

var tabLabels = map[string]string{
	content.TabLong:  "Long-form",
	content.TabShort: "Short-form",
}

// Podcast is the tabbed video gallery. Tabs swap the panel with htmx; without
// JavaScript they are plain links that re-render the page on the chosen tab.
func Podcast(p content.Podcast, active string) g.Node {
	return Section(
		ID("podcast"),
		Class("podcast"),
		Data("section-tracks", "podcast"),
		Div(
			Class("podcast__inner"),
			Data("track", "y opacity"),
			TitleWords(p.Title, "podcast__title"),
			tabStrip(active),
			PodcastPanel(p, active),
		),
	)
}

func podcastTab(tab string, selected bool) g.Node {
	return A(
		ID("podcast-tab-"+tab),
		Class(tabClass(selected)),
		Role("tab"),
		Aria("selected", strconv.FormatBool(selected)),
		Aria("controls", "podcast-panel"),
		Href("/?tab="+tab+"#podcast"),
		hx.Get("/podcast/tabs/"+tab),
		hx.Target("#podcast-panel"),
		hx.Swap("outerHTML"),
		g.Text(tabLabels[tab]),
	)
}

// PodcastPanel is the swappable list of episodes for one tab.
func PodcastPanel(p content.Podcast, tab string) g.Node {
	episodes := p.Tab(tab)
	return Div(
		ID("podcast-panel"),
		Class("podcast__panel"),
		Role("tabpanel"),
		Aria("labelledby", "podcast-tab-"+tab),
		Data("tab", tab),
		g.If(len(episodes) == 0, P(Class("podcast__empty"), g.Text("Nothing here yet. Check back soon."))),
		g.If(len(episodes) > 0, Ul(
			Class("podcast__grid"),
			Data("reveal-group", "podcast"),
			g.Group(g.Map(indexedEpisodes(episodes), episodeCard)),
		)),
	)
}

// PodcastTabs renders the tab strip for an out-of-band swap.
func PodcastTabs(active string) g.Node {
	return tabStrip(active, hx.SwapOOB("outerHTML"))
}

func tabStrip(active string, extra ...g.Node) g.Node {
	return Div(
		ID("podcast-tabs"),
		Class("podcast__tabs"),
		Role("tablist"),
		g.Group(extra),
		g.Group(g.Map(content.Tabs(), func(tab string) g.Node {
			return podcastTab(tab, tab == active)
		})),
	)
}

func tabClass(selected bool) string {
	if selected {
		return "podcast__tab is-active"
	}
	return "podcast__tab"
}

type indexedEpisode struct {
	i int
	e content.Episode
}

func indexedEpisodes(es []content.Episode) []indexedEpisode {
	out := make([]indexedEpisode, len(es))
	for i, e := range es {
		out[i] = indexedEpisode{i, e}
	}
	return out
}

func episodeCard(ie indexedEpisode) g.Node {
	e := ie.e
	return Li(
		Class("episode"),
		Data("reveal", "podcast"),
		Data("index", strconv.Itoa(ie.i)),
		g.Attr("tabindex", "0"),
		Div(
			Class("episode__player"),
			IFrame(
				Src(e.EmbedURL()),
				g.Attr("title", e.Title),
				g.Attr("loading", "lazy"),
				g.Attr("sandbox", "allow-scripts allow-same-origin allow-presentation allow-popups"),
				g.Attr("allow", "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"),
				g.Attr("allowfullscreen", ""),
				g.Attr("referrerpolicy", "strict-origin-when-cross-origin"),
			),
		),
		Div(
			Class("episode__meta"),
			g.If(e.Episode != "", Span(Class("episode__number"), g.Text("EP "+e.Episode))),
			g.If(e.Duration != "", Span(Class("episode__duration"), g.Text(e.Duration))),
		),
		H3(Class("episode__title"), g.Text(e.Title)),
		g.If(e.Description != "", P(Class("episode__description"), g.Text(e.Description))),
	)
}
