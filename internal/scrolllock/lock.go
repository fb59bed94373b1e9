// Package scrolllock models the document-level scroll lock shared by the
// splash loader and the navigation menu overlay.
package scrolllock

import "sync"

// Well-known holders.
const (
	HolderSplash = "splash"
	HolderMenu   = "menu"
)

// Lock is a scroll lock held by named holders. Acquire and Release are
// idempotent per holder, so a holder can release unconditionally on every
// exit path without unbalancing other holders.
type Lock struct {
	mu       sync.Mutex
	holders  map[string]struct{}
	onChange []func(locked bool)
}

// New returns an unlocked Lock.
func New() *Lock {
	return &Lock{holders: make(map[string]struct{})}
}

// OnChange registers fn to be called whenever the locked state flips.
func (l *Lock) OnChange(fn func(locked bool)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Acquire adds holder. A second Acquire by the same holder is a no-op.
func (l *Lock) Acquire(holder string) {
	l.mu.Lock()
	was := len(l.holders) > 0
	l.holders[holder] = struct{}{}
	notify := l.snapshotIfFlipped(was)
	l.mu.Unlock()
	notifyAll(notify, true)
}

// Release drops holder. Releasing a holder that does not hold the lock is a no-op.
func (l *Lock) Release(holder string) {
	l.mu.Lock()
	was := len(l.holders) > 0
	delete(l.holders, holder)
	notify := l.snapshotIfFlipped(was)
	l.mu.Unlock()
	notifyAll(notify, false)
}

// Locked reports whether any holder holds the lock.
func (l *Lock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.holders) > 0
}

// Holds reports whether holder currently holds the lock.
func (l *Lock) Holds(holder string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.holders[holder]
	return ok
}

func (l *Lock) snapshotIfFlipped(was bool) []func(bool) {
	if was == (len(l.holders) > 0) {
		return nil
	}
	return append([]func(bool){}, l.onChange...)
}

func notifyAll(fns []func(bool), locked bool) {
	for _, fn := range fns {
		fn(locked)
	}
}
