package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "landmarks.csv")
	writeFile(t, path, "AVAL,1,2,0.5,0.9,0.1,0.1\n")

	// polling mode keeps the test independent of fsnotify support in the
	// test environment
	w, err := New(path,
		WithForcePoll(true),
		WithPollInterval(20*time.Millisecond),
		WithDebounceDuration(20*time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if !w.IsPolling() {
		t.Error("forced polling mode not active")
	}

	// mtime granularity can be coarse, grow the file so size changes too
	time.Sleep(50 * time.Millisecond)
	writeFile(t, path, "AVAL,1,2,0.5,0.9,0.1,0.1\nAVAR,1,2,-0.5,0.9,0.1,0.1\n")

	select {
	case <-w.Changed():
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcherStartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.csv")
	writeFile(t, path, "x\n")

	w, err := New(path, WithForcePoll(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := w.Start(); err != ErrAlreadyStarted {
		t.Errorf("second Start = %v, want ErrAlreadyStarted", err)
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.csv")
	writeFile(t, path, "x\n")

	w, err := New(path, WithForcePoll(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop() // second stop is a no-op
}

func TestWatcherMissingFileAllowed(t *testing.T) {
	// the file may appear later, e.g. the dataset is being downloaded
	path := filepath.Join(t.TempDir(), "later.csv")
	w, err := New(path, WithForcePoll(true), WithPollInterval(20*time.Millisecond),
		WithDebounceDuration(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start with missing file: %v", err)
	}
	defer w.Stop()

	writeFile(t, path, "AVAL,1,2,0.5,0.9,0.1,0.1\n")
	select {
	case <-w.Changed():
	case <-time.After(3 * time.Second):
		t.Fatal("file creation not detected")
	}
}
