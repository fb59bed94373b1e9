// Package schedule owns the timers used for UI sequencing (splash fade-out,
// status banner auto-dismiss). Components never start raw timers; they ask a
// Scheduler, usually through a Group so teardown is a single Stop call.
package schedule

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Timer
}

// Real schedules callbacks on the runtime timer wheel.
type Real struct{}

// After implements Scheduler.
func (Real) After(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Group tracks every timer started through it so that all of them can be
// cancelled together when the owning component goes away.
type Group struct {
	mu      sync.Mutex
	sched   Scheduler
	pending map[*groupTimer]struct{}
	stopped bool
}

// NewGroup creates a Group backed by sched.
func NewGroup(sched Scheduler) *Group {
	return &Group{
		sched:   sched,
		pending: make(map[*groupTimer]struct{}),
	}
}

type groupTimer struct {
	g     *Group
	inner Timer
}

func (t *groupTimer) Stop() bool {
	t.g.mu.Lock()
	_, ok := t.g.pending[t]
	delete(t.g.pending, t)
	t.g.mu.Unlock()
	if !ok {
		return false
	}
	return t.inner.Stop()
}

// After schedules fn unless the group has been stopped, in which case the
// returned timer is inert.
func (g *Group) After(d time.Duration, fn func()) Timer {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := &groupTimer{g: g}
	if g.stopped {
		t.inner = inertTimer{}
		return t
	}
	g.pending[t] = struct{}{}
	t.inner = g.sched.After(d, func() {
		g.mu.Lock()
		_, live := g.pending[t]
		delete(g.pending, t)
		g.mu.Unlock()
		if live {
			fn()
		}
	})
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

// Stop cancels every outstanding timer and refuses new ones.
func (g *Group) Stop() {
	g.mu.Lock()
	timers := make([]*groupTimer, 0, len(g.pending))
	for t := range g.pending {
		timers = append(timers, t)
	}
	g.pending = make(map[*groupTimer]struct{})
	g.stopped = true
	g.mu.Unlock()

	for _, t := range timers {
		t.inner.Stop()
	}
}

type inertTimer struct{}

func (inertTimer) Stop() bool { return false }
