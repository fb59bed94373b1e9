package reveal

import "time"

// Journey cards slide in from alternating sides on desktop and scale up from
// 0.8; on mobile they only fade and scale.
var Journey = Variant{
	Name:      "journey",
	Threshold: 0.2,
	Timing: Timing{
		BaseDelay: 200 * time.Millisecond,
		Increment: 150 * time.Millisecond,
		Duration:  800 * time.Millisecond,
	},
	Hidden: func(index int, desktop bool) Pose {
		p := Pose{Opacity: 0, Scale: 0.8}
		if desktop {
			p.X = -100
			if index%2 != 0 {
				p.X = 100
			}
			p.RotateY = -15
		}
		return p
	},
	Highlight: Highlight{Scale: 1.05},
}

// Podcast cards rise and tip forward into place.
var Podcast = Variant{
	Name:      "podcast",
	Threshold: 0.3,
	Timing: Timing{
		BaseDelay: 0,
		Increment: 200 * time.Millisecond,
		Duration:  800 * time.Millisecond,
	},
	Hidden: func(int, bool) Pose {
		return Pose{Opacity: 0, Y: 100, Scale: 1, RotateX: -45}
	},
	Highlight: Highlight{Scale: 1.05, Glow: "#00E6E6"},
}

// TitleWords reveals a heading word by word.
var TitleWords = Variant{
	Name:      "title-words",
	Threshold: 0.3,
	Timing: Timing{
		BaseDelay: 200 * time.Millisecond,
		Increment: 100 * time.Millisecond,
		Duration:  800 * time.Millisecond,
	},
	Hidden: func(int, bool) Pose {
		return Pose{Opacity: 0, Y: 50, Scale: 1, RotateX: -90}
	},
	Highlight: Highlight{Scale: 1},
}

// Variants lists every card variant by name.
func Variants() []Variant {
	return []Variant{Journey, Podcast, TitleWords}
}

// MaxTilt is the contact frame's tilt range in degrees.
const MaxTilt = 5.0

// Tilt maps a pointer position inside a w x h box to the frame's rotation.
// The centre is flat; the edges reach +/-MaxTilt. Positions outside the box
// are clamped to it.
func Tilt(x, y, w, h float64) (rotateX, rotateY float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	x = clamp(x, 0, w)
	y = clamp(y, 0, h)
	cx, cy := w/2, h/2
	rotateX = ((y - cy) / cy) * -MaxTilt
	rotateY = ((x - cx) / cx) * MaxTilt
	return rotateX, rotateY
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
