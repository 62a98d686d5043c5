package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration collapses bursts of file events (editors and
// atomic writers often produce several) into a single notification.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer coalesces rapid Trigger calls: the callback fires once after
// the duration has elapsed without another Trigger.
type Debouncer struct {
	d     time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given settle duration.
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounceDuration
	}
	return &Debouncer{d: d}
}

// Trigger schedules fn, resetting the settle timer if one is pending.
func (db *Debouncer) Trigger(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, fn)
}

// Cancel drops any pending callback.
func (db *Debouncer) Cancel() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
