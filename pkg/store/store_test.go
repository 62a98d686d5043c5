package store

import (
	"testing"

	"github.com/neurolens/neurolens/pkg/model"
)

func TestStoreGet(t *testing.T) {
	st := New([]model.Point{
		{Name: "AVAL", X: 1},
		{Name: "AVAR", X: 2},
	})
	if st.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", st.Len())
	}
	p, ok := st.Get("AVAL")
	if !ok || p.X != 1 {
		t.Errorf("Get(AVAL) = %+v, %v", p, ok)
	}
	if _, ok := st.Get("missing"); ok {
		t.Error("Get(missing) should report not found")
	}
}

func TestStoreDuplicateOverwrites(t *testing.T) {
	st := New([]model.Point{
		{Name: "AVAL", X: 1},
		{Name: "AVAL", X: 9},
	})
	if st.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", st.Len())
	}
	p, _ := st.Get("AVAL")
	if p.X != 9 {
		t.Errorf("duplicate load should keep the last point, got X=%v", p.X)
	}
}

func TestStorePoints(t *testing.T) {
	st := New([]model.Point{{Name: "a"}, {Name: "b"}})
	pts := st.Points()
	if len(pts) != 2 {
		t.Fatalf("Points() returned %d points, want 2", len(pts))
	}
	seen := map[string]bool{}
	for _, p := range pts {
		seen[p.Name] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("Points() missing entries: %v", seen)
	}
}
