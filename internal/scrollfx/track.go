// Package scrollfx maps a normalized scroll progress p in [0,1] to visual
// properties. Everything here is a pure function of p and the viewport, so the
// choreography is testable without a browser.
package scrollfx

import (
	"fmt"
	"math"
)

// Track is a piecewise-linear mapping from progress stops to output values.
// Inputs before the first stop or after the last are clamped.
type Track struct {
	In  []float64 `json:"in"`
	Out []float64 `json:"out"`
}

// NewTrack validates and returns a Track. In must be strictly increasing and
// the same length as Out.
func NewTrack(in, out []float64) (Track, error) {
	if len(in) == 0 || len(in) != len(out) {
		return Track{}, fmt.Errorf("track needs matching non-empty stops, got %d in and %d out", len(in), len(out))
	}
	for i := 1; i < len(in); i++ {
		if in[i] <= in[i-1] {
			return Track{}, fmt.Errorf("track input stops must increase: %v", in)
		}
	}
	return Track{In: in, Out: out}, nil
}

// MustTrack is NewTrack for package-level literals.
func MustTrack(in, out []float64) Track {
	t, err := NewTrack(in, out)
	if err != nil {
		panic(err)
	}
	return t
}

// Linear maps [from,to] on the progress axis to [a,b].
func Linear(from, to, a, b float64) Track {
	return MustTrack([]float64{from, to}, []float64{a, b})
}

// At evaluates the track at p.
func (t Track) At(p float64) float64 {
	n := len(t.In)
	if n == 0 {
		return 0
	}
	if math.IsNaN(p) || p <= t.In[0] {
		return t.Out[0]
	}
	if p >= t.In[n-1] {
		return t.Out[n-1]
	}
	for i := 1; i < n; i++ {
		if p <= t.In[i] {
			span := t.In[i] - t.In[i-1]
			f := (p - t.In[i-1]) / span
			return t.Out[i-1] + f*(t.Out[i]-t.Out[i-1])
		}
	}
	return t.Out[n-1]
}

// Monotonic reports whether the track's outputs never change direction.
func (t Track) Monotonic() bool {
	up, down := false, false
	for i := 1; i < len(t.Out); i++ {
		switch {
		case t.Out[i] > t.Out[i-1]:
			up = true
		case t.Out[i] < t.Out[i-1]:
			down = true
		}
	}
	return !(up && down)
}

// Clamp01 clamps p into [0,1]; NaN becomes 0.
func Clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
