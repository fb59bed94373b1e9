package scrollfx

import (
	"fmt"
	"sync"
)

// Breakpoint is the viewport width at and above which the desktop program runs.
const Breakpoint = 768

// Pinned scroll distances, in CSS pixels.
const (
	DesktopPinDistance = 500
	MobilePinDistance  = 900
)

// Viewport is the browser viewport in CSS pixels.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsMobile reports whether v is below the breakpoint.
func (v Viewport) IsMobile() bool { return v.Width < Breakpoint }

// StyleState is the About panel's style at a given progress. A mobile state
// only sets the clip/image/text fields; a desktop state only sets the mask
// size fields.
type StyleState struct {
	Program  string  `json:"program"`
	Progress float64 `json:"progress"`
	Released bool    `json:"released"`

	// Desktop mask.
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	BorderRadius float64 `json:"borderRadius,omitempty"`

	// Mobile chain.
	Step        int     `json:"step,omitempty"`
	ClipRX      float64 `json:"clipRx,omitempty"`
	ClipRY      float64 `json:"clipRy,omitempty"`
	ImageY      float64 `json:"imageY,omitempty"`
	ImageScale  float64 `json:"imageScale,omitempty"`
	TextOpacity float64 `json:"textOpacity,omitempty"`
	TextY       float64 `json:"textY,omitempty"`
}

// CSS renders the state as inline style declarations keyed by target element.
func (s StyleState) CSS() map[string]map[string]string {
	if s.Program == MobileName {
		return map[string]map[string]string{
			"mask":  {"clip-path": fmt.Sprintf("ellipse(%.2f%% %.2f%% at 50%% 50%%)", s.ClipRX, s.ClipRY)},
			"image": {"transform": fmt.Sprintf("translateY(%.2fpx) scale(%.4f)", s.ImageY, s.ImageScale)},
			"text":  {"opacity": fmt.Sprintf("%.4f", s.TextOpacity), "transform": fmt.Sprintf("translateY(%.2fpx)", s.TextY)},
		}
	}
	return map[string]map[string]string{
		"mask": {
			"width":         fmt.Sprintf("%.2fpx", s.Width),
			"height":        fmt.Sprintf("%.2fpx", s.Height),
			"border-radius": fmt.Sprintf("%.2fpx", s.BorderRadius),
		},
	}
}

// Program is one interpolation program for the About panel.
type Program interface {
	Name() string
	PinDistance() float64
	At(p float64) StyleState
	// Tracks exposes the program's tracks by property for the browser.
	Tracks() map[string]Track
}

// Program names.
const (
	MobileName  = "mobile"
	DesktopName = "desktop"
)

// SelectProgram returns exactly one program for the viewport.
func SelectProgram(v Viewport) Program {
	if v.IsMobile() {
		return NewMobileProgram(v)
	}
	return NewDesktopProgram(v)
}

// DesktopProgram expands the masked region from a rounded card to the full
// viewport.
type DesktopProgram struct {
	width, height, radius Track
}

// NewDesktopProgram derives the mask geometry from the viewport.
func NewDesktopProgram(v Viewport) *DesktopProgram {
	startW := v.Width * 0.3
	startH := v.Height * 0.6
	return &DesktopProgram{
		width:  Linear(0, 1, startW, v.Width),
		height: Linear(0, 1, startH, v.Height),
		radius: Linear(0, 1, 24, 0),
	}
}

func (d *DesktopProgram) Name() string { return DesktopName }
func (d *DesktopProgram) PinDistance() float64 { return DesktopPinDistance }

func (d *DesktopProgram) At(p float64) StyleState {
	p = Clamp01(p)
	return StyleState{
		Program:      DesktopName,
		Progress:     p,
		Released:     p >= 1,
		Width:        d.width.At(p),
		Height:       d.height.At(p),
		BorderRadius: d.radius.At(p),
	}
}

func (d *DesktopProgram) Tracks() map[string]Track {
	return map[string]Track{"width": d.width, "height": d.height, "borderRadius": d.radius}
}

// MobileProgram chains three steps, each owning a third of the progress:
// the ellipse clip opens, then the image moves aside, then the text appears.
type MobileProgram struct {
	clipRX, clipRY     Track
	imageY, imageScale Track
	textOpacity, textY Track
}

const (
	stepOneEnd = 1.0 / 3
	stepTwoEnd = 2.0 / 3
)

// NewMobileProgram derives the chain geometry from the viewport.
func NewMobileProgram(v Viewport) *MobileProgram {
	return &MobileProgram{
		clipRX:      Linear(0, stepOneEnd, 30, 150),
		clipRY:      Linear(0, stepOneEnd, 20, 150),
		imageY:      Linear(stepOneEnd, stepTwoEnd, 0, -v.Height*0.25),
		imageScale:  Linear(stepOneEnd, stepTwoEnd, 1, 0.6),
		textOpacity: Linear(stepTwoEnd, 1, 0, 1),
		textY:       Linear(stepTwoEnd, 1, 40, 0),
	}
}

func (m *MobileProgram) Name() string { return MobileName }
func (m *MobileProgram) PinDistance() float64 { return MobilePinDistance }

func (m *MobileProgram) At(p float64) StyleState {
	p = Clamp01(p)
	step := 0
	switch {
	case p >= stepTwoEnd:
		step = 2
	case p >= stepOneEnd:
		step = 1
	}
	return StyleState{
		Program:     MobileName,
		Progress:    p,
		Released:    p >= 1,
		Step:        step,
		ClipRX:      m.clipRX.At(p),
		ClipRY:      m.clipRY.At(p),
		ImageY:      m.imageY.At(p),
		ImageScale:  m.imageScale.At(p),
		TextOpacity: m.textOpacity.At(p),
		TextY:       m.textY.At(p),
	}
}

func (m *MobileProgram) Tracks() map[string]Track {
	return map[string]Track{
		"clipRx":      m.clipRX,
		"clipRy":      m.clipRY,
		"imageY":      m.imageY,
		"imageScale":  m.imageScale,
		"textOpacity": m.textOpacity,
		"textY":       m.textY,
	}
}

// Sample evaluates prog at steps+1 evenly spaced progress values.
func Sample(prog Program, steps int) []StyleState {
	if steps < 1 {
		steps = 1
	}
	out := make([]StyleState, steps+1)
	for i := 0; i <= steps; i++ {
		out[i] = prog.At(float64(i) / float64(steps))
	}
	return out
}

// Pin tracks the pinned About region. Its geometry is recomputed on every
// Resize; nothing survives from the previous viewport.
type Pin struct {
	mu      sync.Mutex
	start   float64
	program Program
}

// NewPin creates a pin whose region starts at scroll offset start.
func NewPin(v Viewport, start float64) *Pin {
	return &Pin{start: start, program: SelectProgram(v)}
}

// Resize recomputes the program for the new viewport and region start.
func (p *Pin) Resize(v Viewport, start float64) {
	prog := SelectProgram(v)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.start = start
	p.program = prog
}

// Program returns the active program.
func (p *Pin) Program() Program {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.program
}

// Progress converts a document scroll offset into pinned progress.
func (p *Pin) Progress(scrollY float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Clamp01((scrollY - p.start) / p.program.PinDistance())
}

// At returns the style for a document scroll offset.
func (p *Pin) At(scrollY float64) StyleState {
	prog := p.Program()
	return prog.At(p.Progress(scrollY))
}
