package audit

import (
	"sync"
	"time"
)

type failureWindow struct {
	count int
	first time.Time
}

// failureTracker counts failed logins per identifier inside a sliding start window.
type failureTracker struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*failureWindow
}

func newFailureTracker(window time.Duration) *failureTracker {
	return &failureTracker{window: window, entries: make(map[string]*failureWindow)}
}

// Fail records one failure and returns the count inside the current window.
func (t *failureTracker) Fail(identifier string, now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[identifier]
	if !ok || now.Sub(entry.first) >= t.window {
		entry = &failureWindow{first: now}
		t.entries[identifier] = entry
	}
	entry.count++

	return entry.count
}

// Clear forgets the identifier after a successful login.
func (t *failureTracker) Clear(identifier string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, identifier)
}

// Sweep drops windows that ended before now.
func (t *failureTracker) Sweep(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for identifier, entry := range t.entries {
		if now.Sub(entry.first) >= t.window {
			delete(t.entries, identifier)
			removed++
		}
	}

	return removed
}
