// Package splash implements the one-time video loader that gates the page.
//
// The gate moves playing -> ended_fading -> hidden. Any of the media ending,
// the media failing to load or play, or an explicit skip leaves playing; the
// fade-out then completes on a scheduler timer. While the gate is not hidden it
// holds the document scroll lock.
package splash

import (
	"sync"
	"time"

	"github.com/nfrund/backstory/internal/schedule"
	"github.com/nfrund/backstory/internal/scrolllock"
)

// State is a gate state.
type State string

const (
	StatePlaying     State = "playing"
	StateEndedFading State = "ended_fading"
	StateHidden      State = "hidden"
)

// Event drives the gate.
type Event string

const (
	EventMediaEnded  Event = "media_ended"
	EventMediaError  Event = "media_error"
	EventSkip        Event = "skip"
	EventFadeElapsed Event = "fade_elapsed"
)

// DefaultFade is the loader fade-out duration.
const DefaultFade = 500 * time.Millisecond

// Transition is one row of the gate's transition table.
type Transition struct {
	From  State `json:"from"`
	Event Event `json:"event"`
	To    State `json:"to"`
}

var transitions = []Transition{
	{StatePlaying, EventMediaEnded, StateEndedFading},
	{StatePlaying, EventMediaError, StateEndedFading},
	{StatePlaying, EventSkip, StateEndedFading},
	{StateEndedFading, EventFadeElapsed, StateHidden},
}

// Table returns a copy of the transition table.
func Table() []Transition {
	return append([]Transition(nil), transitions...)
}

func next(from State, ev Event) (State, bool) {
	for _, t := range transitions {
		if t.From == from && t.Event == ev {
			return t.To, true
		}
	}
	return from, false
}

// View is the observable UI state for the current gate state.
type View struct {
	LoaderMounted  bool    `json:"loaderMounted"`
	LoaderOpacity  float64 `json:"loaderOpacity"`
	ContentOpacity float64 `json:"contentOpacity"`
	PointerEvents  bool    `json:"pointerEvents"`
	ScrollLocked   bool    `json:"scrollLocked"`
}

// Gate is a single splash loader instance.
type Gate struct {
	mu       sync.Mutex
	state    State
	cause    Event
	fade     time.Duration
	lock     *scrolllock.Lock
	timers   *schedule.Group
	onHidden []func()
}

// Option configures a Gate.
type Option func(*Gate)

// WithFade overrides DefaultFade.
func WithFade(d time.Duration) Option {
	return func(g *Gate) { g.fade = d }
}

// New mounts a gate in the playing state and takes the scroll lock.
func New(lock *scrolllock.Lock, sched schedule.Scheduler, opts ...Option) *Gate {
	g := &Gate{
		state:  StatePlaying,
		fade:   DefaultFade,
		lock:   lock,
		timers: schedule.NewGroup(sched),
	}
	for _, opt := range opts {
		opt(g)
	}
	lock.Acquire(scrolllock.HolderSplash)
	return g
}

// OnHidden registers fn to run once the gate reaches the hidden state.
func (g *Gate) OnHidden(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onHidden = append(g.onHidden, fn)
}

// Fire applies ev and reports whether it caused a transition. Events that do
// not apply to the current state are ignored, so a late media error after a
// skip has no effect.
func (g *Gate) Fire(ev Event) bool {
	g.mu.Lock()
	to, ok := next(g.state, ev)
	if !ok {
		g.mu.Unlock()
		return false
	}
	g.state = to

	var hidden []func()
	switch to {
	case StateEndedFading:
		g.cause = ev
		g.timers.After(g.fade, func() { g.Fire(EventFadeElapsed) })
	case StateHidden:
		hidden = g.onHidden
		g.onHidden = nil
	}
	g.mu.Unlock()

	if to == StateHidden {
		g.teardown()
		for _, fn := range hidden {
			fn()
		}
	}
	return true
}

// MediaEnded reports natural end of playback.
func (g *Gate) MediaEnded() bool { return g.Fire(EventMediaEnded) }

// MediaError reports a load or playback failure. The failure is absorbed as a skip.
func (g *Gate) MediaError() bool { return g.Fire(EventMediaError) }

// Skip is the user's skip control.
func (g *Gate) Skip() bool { return g.Fire(EventSkip) }

// Close tears the gate down regardless of its state, cancelling the pending
// fade and releasing the scroll lock.
func (g *Gate) Close() {
	g.teardown()
}

func (g *Gate) teardown() {
	g.timers.Stop()
	g.lock.Release(scrolllock.HolderSplash)
}

// State returns the current state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Cause returns the event that ended playback, or "" while still playing.
func (g *Gate) Cause() Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cause
}

// View returns the UI state for the current gate state.
func (g *Gate) View() View {
	state := g.State()
	locked := g.lock.Holds(scrolllock.HolderSplash)
	return ViewFor(state, locked)
}

// ViewFor maps a state to its UI state. The scroll lock is reported as given
// so that a torn-down gate reflects its release.
func ViewFor(state State, scrollLocked bool) View {
	switch state {
	case StatePlaying:
		return View{LoaderMounted: true, LoaderOpacity: 1, ContentOpacity: 0, ScrollLocked: scrollLocked}
	case StateEndedFading:
		return View{LoaderMounted: true, LoaderOpacity: 0, ContentOpacity: 0, ScrollLocked: scrollLocked}
	default:
		return View{LoaderMounted: false, LoaderOpacity: 0, ContentOpacity: 1, PointerEvents: true, ScrollLocked: scrollLocked}
	}
}
