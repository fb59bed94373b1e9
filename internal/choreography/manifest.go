// Package choreography builds the manifest the browser script interprets.
// Every timing, threshold and keyframe the page animates with comes from the
// Go models; the script holds no constants of its own.
package choreography

import (
	"strings"
	"time"

	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/internal/navbar"
	"github.com/nfrund/backstory/internal/reveal"
	"github.com/nfrund/backstory/internal/scrollfx"
	"github.com/nfrund/backstory/internal/splash"
)

// Manifest is the complete choreography document.
type Manifest struct {
	Breakpoint int                      `json:"breakpoint"`
	Splash     Splash                   `json:"splash"`
	Nav        Nav                      `json:"nav"`
	Reveal     map[string]List          `json:"reveal"`
	About      About                    `json:"about"`
	Sections   []scrollfx.SectionTracks `json:"sections"`
	Contact    Contact                  `json:"contact"`
}

type Splash struct {
	Initial     splash.State                 `json:"initial"`
	Transitions []splash.Transition          `json:"transitions"`
	Views       map[splash.State]splash.View `json:"views"`
	FadeMS      int64                        `json:"fadeMs"`
}

type Nav struct {
	HideThreshold float64 `json:"hideThreshold"`
}

// List is one staggered card list. Delays are listed per index; cards past
// the end continue the BaseDelayMS + i*IncrementMS sequence.
type List struct {
	Threshold    float64          `json:"threshold"`
	BaseDelayMS  int64            `json:"baseDelayMs"`
	IncrementMS  int64            `json:"incrementMs"`
	DurationMS   int64            `json:"durationMs"`
	DelaysMS     []int64          `json:"delaysMs"`
	Hidden       []reveal.Pose    `json:"hidden"`
	HiddenMobile []reveal.Pose    `json:"hiddenMobile"`
	Rest         reveal.Pose      `json:"rest"`
	Highlight    reveal.Highlight `json:"highlight"`
}

// Program is an About program with viewport-relative tracks. Units names the
// unit of each track that is not unitless.
type Program struct {
	PinDistance float64                   `json:"pinDistance"`
	Tracks      map[string]scrollfx.Track `json:"tracks"`
	Units       map[string]string         `json:"units"`
}

type About struct {
	Programs map[string]Program `json:"programs"`
}

type Contact struct {
	ClearDelayMS int64                     `json:"clearDelayMs"`
	Messages     map[contact.Status]string `json:"messages"`
	MaxTilt      float64                   `json:"maxTilt"`
}

// unit is a 1x1 viewport: desktop mask sizes and the mobile image offset come
// out as fractions of the viewport.
var unit = scrollfx.Viewport{Width: 1, Height: 1}

// Build assembles the manifest for site.
func Build(site *content.Site) Manifest {
	longest := 0
	for _, tab := range content.Tabs() {
		if n := len(site.Podcast.Tab(tab)); n > longest {
			longest = n
		}
	}

	colors := make([]string, len(site.Journey.Cards))
	for i, c := range site.Journey.Cards {
		colors[i] = c.Color
	}

	return Manifest{
		Breakpoint: scrollfx.Breakpoint,
		Splash:     buildSplash(),
		Nav:        Nav{HideThreshold: navbar.HideThreshold},
		Reveal: map[string]List{
			reveal.Journey.Name:    buildList(reveal.Journey, len(site.Journey.Cards)),
			reveal.Podcast.Name:    buildList(reveal.Podcast, longest),
			reveal.TitleWords.Name: buildList(reveal.TitleWords, maxWords(site.About.Title, site.Podcast.Title, site.Contact.Title)),
		},
		About: About{Programs: map[string]Program{
			scrollfx.DesktopName: {
				PinDistance: scrollfx.DesktopPinDistance,
				Tracks:      scrollfx.NewDesktopProgram(unit).Tracks(),
				Units:       map[string]string{"width": "vw", "height": "vh", "borderRadius": "px"},
			},
			scrollfx.MobileName: {
				PinDistance: scrollfx.MobilePinDistance,
				Tracks:      scrollfx.NewMobileProgram(unit).Tracks(),
				Units:       map[string]string{"clipRx": "%", "clipRy": "%", "imageY": "vh", "textY": "px"},
			},
		}},
		Sections: scrollfx.Sections(),
		Contact: Contact{
			ClearDelayMS: ms(contact.ClearDelay),
			Messages:     messages(),
			MaxTilt:      reveal.MaxTilt,
		},
	}
}

func buildSplash() Splash {
	views := make(map[splash.State]splash.View)
	for _, st := range []splash.State{splash.StatePlaying, splash.StateEndedFading, splash.StateHidden} {
		views[st] = splash.ViewFor(st, st != splash.StateHidden)
	}
	return Splash{
		Initial:     splash.StatePlaying,
		Transitions: splash.Table(),
		Views:       views,
		FadeMS:      ms(splash.DefaultFade),
	}
}

func buildList(v reveal.Variant, n int) List {
	desktop := reveal.NewList(v, n, true)
	l := List{
		Threshold:    v.Threshold,
		BaseDelayMS:  ms(v.Timing.BaseDelay),
		IncrementMS:  ms(v.Timing.Increment),
		DurationMS:   ms(v.Timing.Duration),
		DelaysMS:     make([]int64, n),
		Hidden:       make([]reveal.Pose, n),
		HiddenMobile: make([]reveal.Pose, n),
		Rest:         reveal.Rest,
		Highlight:    v.Highlight,
	}
	for i, e := range desktop.Entrances() {
		l.DelaysMS[i] = ms(e.Delay)
		l.Hidden[i] = e.From
		l.HiddenMobile[i] = v.Hidden(i, false)
	}
	return l
}

func messages() map[contact.Status]string {
	out := make(map[contact.Status]string)
	for _, st := range contact.Statuses() {
		out[st] = st.Message()
	}
	return out
}

// maxWords is the longest word count among the word-revealed titles.
func maxWords(titles ...string) int {
	n := 0
	for _, t := range titles {
		n = max(n, len(strings.Fields(t)))
	}
	return n
}

func ms(d time.Duration) int64 { return d.Milliseconds() }
