// Package plot is the projection engine: it derives, once per redraw,
// frames of backend-independent draw commands for the primary X-Y view and
// the two auxiliary orthogonal views, including zoom/pan transforms,
// cursor-driven slab filtering and cross-view highlighting.
package plot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds is an axis-aligned rectangle in data space.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether v lies inside the rectangle (closed).
func (b Bounds) Contains(v r2.Vec) bool {
	return v.X >= b.MinX && v.X <= b.MaxX && v.Y >= b.MinY && v.Y <= b.MaxY
}

// Translated returns the bounds shifted by (dx, dy) data units.
func (b Bounds) Translated(dx, dy float64) Bounds {
	return Bounds{
		MinX: b.MinX + dx, MaxX: b.MaxX + dx,
		MinY: b.MinY + dy, MaxY: b.MaxY + dy,
	}
}

// ZoomedAt returns the bounds scaled by factor around the anchor point.
// factor < 1 zooms in, factor > 1 zooms out. The anchor keeps its data
// position fixed on screen.
func (b Bounds) ZoomedAt(factor float64, at r2.Vec) Bounds {
	if factor <= 0 {
		return b
	}
	return Bounds{
		MinX: at.X - (at.X-b.MinX)*factor,
		MaxX: at.X + (b.MaxX-at.X)*factor,
		MinY: at.Y - (at.Y-b.MinY)*factor,
		MaxY: at.Y + (b.MaxY-at.Y)*factor,
	}
}

// canon orders the corners so Min <= Max on both axes.
func (b Bounds) canon() Bounds {
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = b.MaxX, b.MinX
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = b.MaxY, b.MinY
	}
	return b
}

// View holds the zoom/pan state of one plot pane: the current visible
// bounds plus the default bounds restored on reset.
type View struct {
	bounds Bounds
	def    Bounds
}

// NewView creates a view showing def.
func NewView(def Bounds) View {
	def = def.canon()
	return View{bounds: def, def: def}
}

// Bounds returns the currently visible data bounds.
func (v View) Bounds() Bounds { return v.bounds }

// SetHorizontal pins the horizontal extent, keeping the vertical extent.
// The dorsal view uses this every frame to mirror the primary view.
func (v *View) SetHorizontal(minX, maxX float64) {
	v.bounds.MinX, v.bounds.MaxX = minX, maxX
	if v.bounds.MinX > v.bounds.MaxX {
		v.bounds.MinX, v.bounds.MaxX = v.bounds.MaxX, v.bounds.MinX
	}
}

// Pan shifts the view by (dx, dy) data units.
func (v *View) Pan(dx, dy float64) {
	v.bounds = v.bounds.Translated(dx, dy)
}

// ZoomAt scales the view by factor around the given data position.
func (v *View) ZoomAt(factor float64, at r2.Vec) {
	v.bounds = v.bounds.ZoomedAt(factor, at)
}

// BoxZoom replaces the visible bounds with the given rectangle, ignoring
// degenerate boxes that would collapse a span to zero.
func (v *View) BoxZoom(b Bounds) {
	b = b.canon()
	if b.Width() <= 0 || b.Height() <= 0 {
		return
	}
	v.bounds = b
}

// Reset restores the default bounds.
func (v *View) Reset() { v.bounds = v.def }

// Transform maps data space to a screen surface of w x h display units.
// Screen y grows downward while data y grows upward, so the vertical axis
// is flipped.
type Transform struct {
	b    Bounds
	w, h float64
}

// NewTransform builds the data-to-screen transform for the given surface.
func NewTransform(b Bounds, w, h float64) Transform {
	return Transform{b: b, w: w, h: h}
}

// Bounds returns the data bounds the transform was built from.
func (t Transform) Bounds() Bounds { return t.b }

// ToScreen maps a data-space position to screen coordinates.
func (t Transform) ToScreen(v r2.Vec) (x, y float64) {
	x = (v.X - t.b.MinX) / t.b.Width() * t.w
	y = (t.b.MaxY - v.Y) / t.b.Height() * t.h
	return x, y
}

// FromScreen maps screen coordinates back to data space. It is the exact
// inverse of ToScreen for finite bounds.
func (t Transform) FromScreen(x, y float64) r2.Vec {
	return r2.Vec{
		X: t.b.MinX + x/t.w*t.b.Width(),
		Y: t.b.MaxY - y/t.h*t.b.Height(),
	}
}

// MarkerRadius derives the marker radius from the visible horizontal span:
// zoomed in (small span) gives larger markers, bounded to [1, 6] display
// units.
func MarkerRadius(span float64) float64 {
	r := span*-0.01 + 6
	return math.Min(6, math.Max(1, r))
}
