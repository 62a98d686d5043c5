package plot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/neurolens/neurolens/pkg/model"
)

// Marker is a circular point marker in data coordinates. Radius is in
// display units; an unfilled marker renders as an outline ring.
type Marker struct {
	Pos    r2.Vec
	Radius float64
	Color  RGB
	Filled bool
	Name   string
}

// Label is a text annotation anchored in data coordinates.
type Label struct {
	Pos  r2.Vec
	Text string
}

// Frame is one redraw's worth of draw commands for a single projection
// pane, together with the bounds they were derived from. Frames are pure
// values: the backend (terminal cells, PNG, SVG) decides how to realize
// them.
type Frame struct {
	Title  string
	XLabel string
	YLabel string
	Bounds Bounds

	Markers []Marker
	HLines  []float64 // horizontal reference lines at data y
	VLines  []float64 // vertical reference lines at data x
	Labels  []Label
}

// Radius returns the marker radius for this frame's horizontal span.
func (f Frame) Radius() float64 {
	return MarkerRadius(f.Bounds.Width())
}

// Hover is the transient data-space position under the pointer in the
// primary view. It is valid for exactly one redraw.
type Hover struct {
	Pos r2.Vec
	OK  bool
}

// PrimaryFrame renders the filtered set as markers at (x, y). The returned
// frame carries the view's current bounds; the caller derives the
// data-to-screen transform from them and samples the hover position
// through it.
func PrimaryFrame(pts []model.Point, v View, dark bool) Frame {
	f := Frame{
		Title:  "Landmarks (x-y)",
		XLabel: "Anterior - Posterior",
		YLabel: "Ventral - Dorsal",
		Bounds: v.Bounds(),
	}
	radius := f.Radius()
	for _, p := range pts {
		f.Markers = append(f.Markers, Marker{
			Pos:    r2.Vec{X: float64(p.X), Y: float64(p.Y)},
			Radius: radius,
			Color:  MarkerColor(p, dark),
			Filled: true,
			Name:   p.Name,
		})
	}
	return f
}

// FitBounds computes default primary bounds from the full dataset: the
// data extent, always including the origin, padded by a small margin so
// edge markers are not clipped. An empty dataset falls back to a unit
// square around the origin.
func FitBounds(pts []model.Point) Bounds {
	if len(pts) == 0 {
		return Bounds{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}
	}
	b := Bounds{}
	for _, p := range pts {
		b.MinX = math.Min(b.MinX, float64(p.X))
		b.MaxX = math.Max(b.MaxX, float64(p.X))
		b.MinY = math.Min(b.MinY, float64(p.Y))
		b.MaxY = math.Max(b.MaxY, float64(p.Y))
	}
	padX := b.Width() * 0.05
	padY := b.Height() * 0.05
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	b.MinX -= padX
	b.MaxX += padX
	b.MinY -= padY
	b.MaxY += padY
	return b
}
