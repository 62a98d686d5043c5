// Package store holds the loaded landmark dataset in memory for the
// lifetime of the process. The store is read-only after construction;
// every redraw derives its visible set from it from scratch.
package store

import (
	"github.com/neurolens/neurolens/pkg/model"
)

// Store is an immutable in-memory point set keyed by name.
type Store struct {
	byName map[string]model.Point
}

// New builds a store from a slice of points. A duplicate name overwrites
// the earlier record; this is accepted, not an error.
func New(points []model.Point) *Store {
	byName := make(map[string]model.Point, len(points))
	for _, p := range points {
		byName[p.Name] = p
	}
	return &Store{byName: byName}
}

// Get returns the point with the given name.
func (s *Store) Get(name string) (model.Point, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Len returns the number of distinct points.
func (s *Store) Len() int {
	return len(s.byName)
}

// Points returns all points in unspecified order. Callers that need a
// stable order sort the result themselves (see pkg/filter).
func (s *Store) Points() []model.Point {
	out := make([]model.Point, 0, len(s.byName))
	for _, p := range s.byName {
		out = append(out, p)
	}
	return out
}
