package components

import (
	"encoding/json"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TitleWords splits a heading into words revealed one after another.
func TitleWords(title, class string) g.Node {
	words := strings.Fields(title)
	return H2(
		Class("title-words "+class),
		Data("reveal-group", "title-words"),
		g.Group(g.Map(indexed(words), func(w indexedString) g.Node {
			return Span(
				Class("title-words__word"),
				Data("reveal", "title-words"),
				Data("index", strconv.Itoa(w.i)),
				g.Text(w.s),
			)
		})),
	)
}

// CharWave wraps every character of title for the per-character wave.
func CharWave(title, class string) g.Node {
	runes := []rune(title)
	return H2(
		Class("char-wave "+class),
		Data("char-wave", ""),
		Aria("label", title),
		g.Group(g.Map(indexedRunes(runes), func(r indexedString) g.Node {
			if r.s == " " {
				return Span(Class("char-wave__space"), g.Raw("&nbsp;"))
			}
			return Span(Class("char-wave__char"), Aria("hidden", "true"), Data("index", strconv.Itoa(r.i)), g.Text(r.s))
		})),
	)
}

// ManifestScript embeds the choreography manifest for the browser script.
// json.Marshal escapes '<', so the payload cannot close the script element.
func ManifestScript(manifest any) g.Node {
	data, err := json.Marshal(manifest)
	if err != nil {
		data = []byte("{}")
	}
	return Script(Type("application/json"), ID("choreography"), g.Raw(string(data)))
}

type indexedString struct {
	i int
	s string
}

func indexed(ss []string) []indexedString {
	out := make([]indexedString, len(ss))
	for i, s := range ss {
		out[i] = indexedString{i, s}
	}
	return out
}

func indexedRunes(rs []rune) []indexedString {
	out := make([]indexedString, len(rs))
	for i, r := range rs {
		out[i] = indexedString{i, string(r)}
	}
	return out
}
