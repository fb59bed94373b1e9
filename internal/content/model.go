// Package content loads the site copy: nav items, journey milestones, podcast
// episodes and contact details. Content is read once, validated and then
// treated as immutable; a reload swaps in a whole new Site.
package content

import "html/template"

// Podcast tabs.
const (
	TabLong  = "long"
	TabShort = "short"
)

// Tabs lists the podcast tabs in display order.
func Tabs() []string { return []string{TabLong, TabShort} }

// Site is the complete content of the page.
type Site struct {
	Nav     []string `toml:"nav" validate:"min=1,dive,required"`
	Meta    Meta     `toml:"site"`
	Hero    Hero     `toml:"hero"`
	About   About    `toml:"about"`
	Journey Journey  `toml:"journey"`
	Podcast Podcast  `toml:"podcast"`
	Contact Contact  `toml:"contact"`
	Socials []Social `toml:"socials" validate:"dive"`
}

type Meta struct {
	Name        string `toml:"name" validate:"required"`
	Brand       string `toml:"brand"`
	Title       string `toml:"title" validate:"required"`
	Description string `toml:"description"`
	SplashVideo string `toml:"splash_video" validate:"required"`
}

type Hero struct {
	Video    string `toml:"video"`
	Logo     string `toml:"logo"`
	Image    string `toml:"image"`
	Intro    string `toml:"intro"`
	Headline string `toml:"headline" validate:"required"`
	Lede     string `toml:"lede"`
	Name     string `toml:"name"`
	Bio      string `toml:"bio"`
}

type About struct {
	Title string `toml:"title" validate:"required"`
	Image string `toml:"image"`
	Lead  string `toml:"lead" validate:"required"`
	More  string `toml:"more"`

	LeadHTML template.HTML `toml:"-"`
	MoreHTML template.HTML `toml:"-"`
}

type Journey struct {
	Title     string        `toml:"title" validate:"required"`
	Subtitle  string        `toml:"subtitle"`
	Particles bool          `toml:"particles"`
	Cards     []JourneyCard `toml:"cards" validate:"min=1,dive"`
}

// JourneyCard is one milestone on the timeline. Description is markdown.
type JourneyCard struct {
	Title       string `toml:"title" validate:"required"`
	Description string `toml:"description" validate:"required"`
	Color       string `toml:"color" validate:"required,hexcolor"`
	Image       string `toml:"image"`

	DescriptionHTML template.HTML `toml:"-"`
}

type Podcast struct {
	Title      string    `toml:"title" validate:"required"`
	DefaultTab string    `toml:"default_tab" validate:"omitempty,oneof=long short"`
	Episodes   []Episode `toml:"episodes" validate:"dive"`
}

// Episode is one embedded video.
type Episode struct {
	Tab         string `toml:"tab" validate:"required,oneof=long short"`
	VideoID     string `toml:"video_id" validate:"required,videoid"`
	Episode     string `toml:"episode"`
	Title       string `toml:"title" validate:"required"`
	Description string `toml:"description"`
	Duration    string `toml:"duration"`
}

// EmbedURL is the privacy-reduced player URL for the episode.
func (e Episode) EmbedURL() string {
	return "https://www.youtube.com/embed/" + e.VideoID + "?rel=0&modestbranding=1"
}

// Tab returns the episodes in tab, in content order.
func (p Podcast) Tab(tab string) []Episode {
	var out []Episode
	for _, e := range p.Episodes {
		if e.Tab == tab {
			out = append(out, e)
		}
	}
	return out
}

type Contact struct {
	Title   string        `toml:"title" validate:"required"`
	Heading string        `toml:"heading"`
	Intro   string        `toml:"intro"`
	Info    []ContactInfo `toml:"info" validate:"dive"`
}

type ContactInfo struct {
	Icon  string `toml:"icon"`
	Label string `toml:"label" validate:"required"`
	Value string `toml:"value" validate:"required"`
	Href  string `toml:"href" validate:"omitempty,url"`
}

type Social struct {
	Name string `toml:"name" validate:"required"`
	Href string `toml:"href" validate:"required,url"`
}
