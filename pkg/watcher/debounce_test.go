package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	var fired atomic.Int32
	db := NewDebouncer(50 * time.Millisecond)

	for i := 0; i < 10; i++ {
		db.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("fired %d times, want 1", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var fired atomic.Int32
	db := NewDebouncer(30 * time.Millisecond)
	db.Trigger(func() { fired.Add(1) })
	db.Cancel()

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("cancelled trigger fired %d times", got)
	}
}

func TestDebouncerZeroDuration(t *testing.T) {
	db := NewDebouncer(0)
	if db.d != DefaultDebounceDuration {
		t.Errorf("zero duration should fall back to default, got %v", db.d)
	}
}
