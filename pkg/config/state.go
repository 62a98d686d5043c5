package config

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// State is the trivial UI state persisted across sessions: the search
// query, the hemisphere selector and the filter panel visibility. The core
// treats restored values as ordinary initial filter state; any load
// failure silently falls back to defaults.
type State struct {
	Query         string `json:"query"`
	Side          string `json:"side"`
	ShowSidePanel bool   `json:"show_side_panel"`
}

// DefaultState mirrors the original first-run state: wildcard query, both
// hemispheres, filter panel visible.
func DefaultState() State {
	return State{Query: "*", Side: "Both", ShowSidePanel: true}
}

// StatePath returns the full path to state.json.
func StatePath() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "state.json")
}

// LoadState restores the persisted UI state. Missing or unparsable state
// yields DefaultState, never an error.
func LoadState() State {
	return LoadStateFrom(StatePath())
}

// LoadStateFrom restores state from a specific path.
func LoadStateFrom(path string) State {
	st := DefaultState()
	if path == "" {
		return st
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return DefaultState()
	}
	return st
}

// SaveState persists the UI state. Best-effort: persistence must never
// block shutdown.
func SaveState(st State) error {
	return SaveStateTo(st, StatePath())
}

// SaveStateTo persists state to a specific path.
func SaveStateTo(st State, path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
