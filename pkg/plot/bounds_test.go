package plot

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"pgregory.net/rapid"
)

func TestMarkerRadius(t *testing.T) {
	tests := []struct {
		span float64
		want float64
	}{
		{0, 6},
		{100, 5},
		{1000, 1},
		{10000, 1}, // clamped low
		{-50, 6},   // clamped high
	}
	for _, tt := range tests {
		if got := MarkerRadius(tt.span); got != tt.want {
			t.Errorf("MarkerRadius(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestMarkerRadiusBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		span := rapid.Float64Range(-1e6, 1e6).Draw(t, "span")
		r := MarkerRadius(span)
		if r < 1 || r > 6 {
			t.Fatalf("MarkerRadius(%v) = %v, outside [1, 6]", span, r)
		}
	})
}

func TestZoomedAtKeepsAnchor(t *testing.T) {
	b := Bounds{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10}
	at := r2.Vec{X: 2, Y: 3}
	z := b.ZoomedAt(0.5, at)

	// the anchor keeps its relative position inside the bounds
	relBefore := (at.X - b.MinX) / b.Width()
	relAfter := (at.X - z.MinX) / z.Width()
	if math.Abs(relBefore-relAfter) > 1e-12 {
		t.Errorf("anchor moved: %v -> %v", relBefore, relAfter)
	}
	if z.Width() != b.Width()*0.5 {
		t.Errorf("zoomed width = %v, want %v", z.Width(), b.Width()*0.5)
	}
}

func TestZoomedAtRejectsNonPositiveFactor(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	if got := b.ZoomedAt(0, r2.Vec{}); got != b {
		t.Errorf("factor 0 should leave bounds unchanged, got %+v", got)
	}
}

func TestViewBoxZoom(t *testing.T) {
	v := NewView(Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})

	// corners in any order
	v.BoxZoom(Bounds{MinX: 30, MinY: 40, MaxX: 10, MaxY: 20})
	want := Bounds{MinX: 10, MinY: 20, MaxX: 30, MaxY: 40}
	if v.Bounds() != want {
		t.Errorf("BoxZoom = %+v, want %+v", v.Bounds(), want)
	}

	// degenerate box ignored
	v.BoxZoom(Bounds{MinX: 5, MinY: 5, MaxX: 5, MaxY: 50})
	if v.Bounds() != want {
		t.Errorf("degenerate box should be ignored, got %+v", v.Bounds())
	}

	v.Reset()
	if v.Bounds() != (Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}) {
		t.Errorf("Reset = %+v", v.Bounds())
	}
}

func TestViewPan(t *testing.T) {
	v := NewView(Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	v.Pan(3, -2)
	want := Bounds{MinX: 3, MinY: -2, MaxX: 13, MaxY: 8}
	if v.Bounds() != want {
		t.Errorf("Pan = %+v, want %+v", v.Bounds(), want)
	}
}

func TestViewSetHorizontal(t *testing.T) {
	v := NewView(Bounds{MinX: 0, MinY: -5, MaxX: 10, MaxY: 5})
	v.SetHorizontal(20, -20)
	b := v.Bounds()
	if b.MinX != -20 || b.MaxX != 20 {
		t.Errorf("SetHorizontal = [%v, %v], want [-20, 20]", b.MinX, b.MaxX)
	}
	if b.MinY != -5 || b.MaxY != 5 {
		t.Error("SetHorizontal must not touch the vertical extent")
	}
}

func TestTransformRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := Bounds{
			MinX: rapid.Float64Range(-100, 0).Draw(t, "minX"),
			MinY: rapid.Float64Range(-100, 0).Draw(t, "minY"),
		}
		b.MaxX = b.MinX + rapid.Float64Range(1, 200).Draw(t, "w")
		b.MaxY = b.MinY + rapid.Float64Range(1, 200).Draw(t, "h")
		tr := NewTransform(b, 640, 480)

		p := r2.Vec{
			X: rapid.Float64Range(b.MinX, b.MaxX).Draw(t, "x"),
			Y: rapid.Float64Range(b.MinY, b.MaxY).Draw(t, "y"),
		}
		sx, sy := tr.ToScreen(p)
		back := tr.FromScreen(sx, sy)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Fatalf("round trip %v -> (%v, %v) -> %v", p, sx, sy, back)
		}
	})
}

func TestTransformOrientation(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	tr := NewTransform(b, 100, 100)

	// data origin is bottom-left on screen
	x, y := tr.ToScreen(r2.Vec{X: 0, Y: 0})
	if x != 0 || y != 100 {
		t.Errorf("origin maps to (%v, %v), want (0, 100)", x, y)
	}
	x, y = tr.ToScreen(r2.Vec{X: 10, Y: 10})
	if x != 100 || y != 0 {
		t.Errorf("top-right maps to (%v, %v), want (100, 0)", x, y)
	}
}
