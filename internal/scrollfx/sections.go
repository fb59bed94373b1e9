package scrollfx

// SectionTracks are the scroll-linked parallax tracks of one page section,
// keyed by the property they drive.
type SectionTracks struct {
	Section string           `json:"section"`
	Tracks  map[string]Track `json:"tracks"`
}

// JourneyTracks drive the Journey title, subtitle, grid background and
// timeline fill.
func JourneyTracks() SectionTracks {
	return SectionTracks{
		Section: "journey",
		Tracks: map[string]Track{
			"backgroundY":     Linear(0, 1, 0, 30),
			"titleY":          Linear(0, 0.3, 100, 0),
			"titleOpacity":    Linear(0, 0.3, 0, 1),
			"titleScale":      Linear(0, 0.3, 0.8, 1),
			"titleRotate":     Linear(0, 0.3, 45, 0),
			"subtitleX":       Linear(0.1, 0.4, -50, 0),
			"subtitleOpacity": Linear(0.1, 0.4, 0, 1),
			"timelineFill":    Linear(0.1, 0.9, 0, 100),
		},
	}
}

// PodcastTracks drive the Podcast section's drift and fade.
func PodcastTracks() SectionTracks {
	return SectionTracks{
		Section: "podcast",
		Tracks: map[string]Track{
			"y":       Linear(0, 1, 100, -100),
			"opacity": MustTrack([]float64{0, 0.2, 0.8, 1}, []float64{0, 1, 1, 0}),
		},
	}
}

// Sections returns every section's tracks.
func Sections() []SectionTracks {
	return []SectionTracks{JourneyTracks(), PodcastTracks()}
}
