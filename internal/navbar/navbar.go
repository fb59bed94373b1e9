// Package navbar holds the navigation overlay's state: the full-screen menu
// and the rule that hides the bar while the hero is in view.
package navbar

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nfrund/backstory/internal/scrolllock"
)

// HideThreshold is the hero intersection ratio at and above which the bar is
// hidden.
const HideThreshold = 0.3

// Hidden reports whether the bar is hidden for a hero intersection ratio.
func Hidden(ratio float64) bool {
	return ratio >= HideThreshold
}

// Anchor returns the in-page fragment for a nav label, e.g. "About" -> "#about".
func Anchor(label string) string {
	slug := cases.Lower(language.Und).String(strings.TrimSpace(label))
	return "#" + strings.Join(strings.Fields(slug), "-")
}

// Tracker re-evaluates visibility on every observation.
type Tracker struct {
	mu       sync.Mutex
	hidden   bool
	observed bool
}

// Observe feeds a hero intersection ratio and returns the resulting
// visibility and whether it changed. The first observation always counts as
// a change.
func (t *Tracker) Observe(ratio float64) (hidden, changed bool) {
	h := Hidden(ratio)
	t.mu.Lock()
	defer t.mu.Unlock()
	changed = !t.observed || h != t.hidden
	t.hidden = h
	t.observed = true
	return h, changed
}

// Hidden returns the last evaluated visibility. Before any observation the
// bar is visible.
func (t *Tracker) Hidden() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hidden
}

// Menu is the full-screen navigation overlay. While open it holds the
// document scroll lock.
type Menu struct {
	lock *scrolllock.Lock

	mu   sync.Mutex
	open bool
}

// NewMenu returns a closed menu bound to lock.
func NewMenu(lock *scrolllock.Lock) *Menu {
	return &Menu{lock: lock}
}

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	open := !m.open
	m.mu.Unlock()
	if open {
		m.Open()
	} else {
		m.Close()
	}
	return open
}

// Open opens the menu and acquires the scroll lock.
func (m *Menu) Open() {
	m.mu.Lock()
	m.open = true
	m.mu.Unlock()
	m.lock.Acquire(scrolllock.HolderMenu)
}

// Close closes the menu and releases the scroll lock. Closing a closed menu
// is a no-op.
func (m *Menu) Close() {
	m.mu.Lock()
	m.open = false
	m.mu.Unlock()
	m.lock.Release(scrolllock.HolderMenu)
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Release is called when the menu is unmounted. It never leaves the scroll
// lock held.
func (m *Menu) Release() {
	m.Close()
}
