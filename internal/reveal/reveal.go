// Package reveal implements the viewport-relative entrance of card lists.
//
// A card latches "entered view" the first time its intersection ratio reaches
// the list threshold. The latch never resets for the lifetime of the card, so
// its entrance plays exactly once. Hover/focus highlight is a separate,
// reversible state.
package reveal

import (
	"sync"
	"time"
)

// Pose is a set of animatable properties. Zero rotation/offset and unit
// opacity/scale is the resting pose.
type Pose struct {
	Opacity float64 `json:"opacity"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Scale   float64 `json:"scale"`
	RotateX float64 `json:"rotateX"`
	RotateY float64 `json:"rotateY"`
}

// Rest is the pose every entrance ends on.
var Rest = Pose{Opacity: 1, Scale: 1}

// Timing is the entrance timing of a list: card i starts after
// BaseDelay + i*Increment and runs for Duration.
type Timing struct {
	BaseDelay time.Duration `json:"baseDelay"`
	Increment time.Duration `json:"increment"`
	Duration  time.Duration `json:"duration"`
}

// Delay returns the stagger delay for the card at index.
func (t Timing) Delay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return t.BaseDelay + time.Duration(index)*t.Increment
}

// Latch is a one-way false -> true flag.
type Latch struct {
	mu  sync.Mutex
	set bool
}

// Set latches the flag and reports whether this call was the one that set it.
func (l *Latch) Set() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.set {
		return false
	}
	l.set = true
	return true
}

// IsSet reports whether the latch has been set.
func (l *Latch) IsSet() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.set
}

// Entrance describes one forward, non-interruptible entrance animation.
type Entrance struct {
	Index    int           `json:"index"`
	From     Pose          `json:"from"`
	To       Pose          `json:"to"`
	Delay    time.Duration `json:"delay"`
	Duration time.Duration `json:"duration"`
}

// Highlight is the reversible hover/focus state.
type Highlight struct {
	Scale float64 `json:"scale"`
	Glow  string  `json:"glow,omitempty"`
}

// Variant is the animation recipe for a kind of card.
type Variant struct {
	Name      string
	Threshold float64
	Timing    Timing
	// Hidden returns the pre-entrance pose for the card at index.
	Hidden    func(index int, desktop bool) Pose
	Highlight Highlight
}

// Card is one revealable unit in a list.
type Card struct {
	Index   int
	Color   string
	variant Variant
	desktop bool

	entered Latch

	mu        sync.Mutex
	plays     int
	hovered   bool
	focused   bool
	onEntered func(Entrance)
}

// Observe feeds an intersection ratio. It returns the entrance to play and
// true only on the call that latches the card; every later call, whatever the
// ratio, returns false.
func (c *Card) Observe(ratio float64) (Entrance, bool) {
	if ratio < c.variant.Threshold {
		return Entrance{}, false
	}
	if !c.entered.Set() {
		return Entrance{}, false
	}

	e := c.Entrance()
	c.mu.Lock()
	c.plays++
	cb := c.onEntered
	c.mu.Unlock()
	if cb != nil {
		cb(e)
	}
	return e, true
}

// Entrance returns the card's entrance animation without playing it.
func (c *Card) Entrance() Entrance {
	return Entrance{
		Index:    c.Index,
		From:     c.variant.Hidden(c.Index, c.desktop),
		To:       Rest,
		Delay:    c.variant.Timing.Delay(c.Index),
		Duration: c.variant.Timing.Duration,
	}
}

// Entered reports whether the card has latched.
func (c *Card) Entered() bool { return c.entered.IsSet() }

// Plays is the number of times the entrance has started. It is 0 or 1.
func (c *Card) Plays() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plays
}

// Hover sets the pointer-hover flag.
func (c *Card) Hover(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hovered = on
}

// Focus sets the keyboard-focus flag.
func (c *Card) Focus(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focused = on
}

// Highlighted reports whether hover or focus is active.
func (c *Card) Highlighted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hovered || c.focused
}

// Pose returns the pose the card currently rests in: hidden before the
// latch, at rest after, scaled up while highlighted.
func (c *Card) Pose() Pose {
	if !c.Entered() {
		return c.variant.Hidden(c.Index, c.desktop)
	}
	p := Rest
	if c.Highlighted() {
		p.Scale = c.variant.Highlight.Scale
	}
	return p
}

// Glow returns the highlight glow color, empty when not highlighted.
func (c *Card) Glow() string {
	if !c.Highlighted() {
		return ""
	}
	if c.variant.Highlight.Glow != "" {
		return c.variant.Highlight.Glow
	}
	return c.Color
}

// List is an ordered set of cards sharing a variant.
type List struct {
	variant Variant
	cards   []*Card
}

// NewList builds a list of n cards. colors is optional and indexed by card.
func NewList(v Variant, n int, desktop bool, colors ...string) *List {
	l := &List{variant: v, cards: make([]*Card, n)}
	for i := range l.cards {
		c := &Card{Index: i, variant: v, desktop: desktop}
		if i < len(colors) {
			c.Color = colors[i]
		}
		l.cards[i] = c
	}
	return l
}

// Card returns the card at index.
func (l *List) Card(index int) *Card { return l.cards[index] }

// Len returns the number of cards.
func (l *List) Len() int { return len(l.cards) }

// OnEntered registers fn on every card.
func (l *List) OnEntered(fn func(Entrance)) {
	for _, c := range l.cards {
		c.mu.Lock()
		c.onEntered = fn
		c.mu.Unlock()
	}
}

// Entrances returns every card's entrance in index order. Delays are strictly
// increasing whenever the variant's increment is positive.
func (l *List) Entrances() []Entrance {
	out := make([]Entrance, len(l.cards))
	for i, c := range l.cards {
		out[i] = c.Entrance()
	}
	return out
}

// Variant returns the list's variant.
func (l *List) Variant() Variant { return l.variant }
