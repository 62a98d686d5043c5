package plot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/neurolens/neurolens/pkg/model"
)

const (
	// SlabThickness is the half-width of the slice along the hidden axis:
	// a point projects into an auxiliary view only when it lies within
	// this distance of the cursor along the axis that view does not show.
	// The interval is closed, exactly +-1.5 still passes.
	SlabThickness = 1.5

	// HighlightDistance bounds the Euclidean distance, on the first two
	// spatial components, between the cursor and a point for the point to
	// receive the full highlight treatment. Every point inside the radius
	// is highlighted; there is no single-nearest uniqueness.
	HighlightDistance = 0.35

	// labelOffsetDiv positions a highlight label at radius/labelOffsetDiv
	// display units from the marker on both axes.
	labelOffsetDiv = 1.5
)

// DefaultAnteriorBounds returns the fixed default bounds of the anterior
// view (horizontal right-left, vertical ventral-dorsal).
func DefaultAnteriorBounds() Bounds {
	return Bounds{MinX: -15, MaxX: 15, MinY: -25, MaxY: 20}
}

// DefaultDorsalBounds returns the default bounds of the dorsal view: the
// horizontal axis mirrors the primary view, the vertical axis spans the
// negated Z range.
func DefaultDorsalBounds(primary Bounds) Bounds {
	return Bounds{MinX: primary.MinX, MaxX: primary.MaxX, MinY: -15, MaxY: 15}
}

// AnteriorFrame builds the anterior projection (z horizontal, y vertical).
// With a hover present it draws a horizontal reference line at the hovered
// y and restricts drawing to the slab |x - hover.x| <= SlabThickness;
// points within HighlightDistance of the hover additionally get a vertical
// reference line through their z, an outline ring and a name label.
// Without a hover every point draws as a plain marker.
func AnteriorFrame(pts []model.Point, v View, hover Hover, dark bool) Frame {
	f := Frame{
		Title:  "Anterior View (z-y)",
		XLabel: "Right - Left",
		YLabel: "Ventral - Dorsal",
		Bounds: v.Bounds(),
	}
	radius := f.Radius()

	low, high := slab(hover, func(p r2.Vec) float64 { return p.X })
	if hover.OK {
		f.HLines = append(f.HLines, hover.Pos.Y)
	}

	for _, p := range pts {
		x := float64(p.X)
		if x < low || x > high {
			continue
		}
		pos := r2.Vec{X: float64(p.Z), Y: float64(p.Y)}
		f.Markers = append(f.Markers, Marker{
			Pos:    pos,
			Radius: radius,
			Color:  MarkerColor(p, dark),
			Filled: true,
			Name:   p.Name,
		})
		if Highlighted(p, hover) {
			f.VLines = append(f.VLines, float64(p.Z))
			f.Markers = append(f.Markers, Marker{
				Pos:    pos,
				Radius: radius + 2,
				Color:  HighlightColor,
				Filled: false,
				Name:   p.Name,
			})
			f.Labels = append(f.Labels, Label{
				Pos:  r2.Vec{X: pos.X + radius/labelOffsetDiv, Y: pos.Y + radius/labelOffsetDiv},
				Text: p.Name,
			})
		}
	}
	return f
}

// DorsalFrame builds the dorsal projection (x horizontal, negated z
// vertical). Its horizontal extent is kept in sync with the primary view by
// the caller; candidates are always intersected with the primary horizontal
// bounds. With a hover present it draws a vertical reference line at the
// hovered x and restricts drawing to the slab |y - hover.y| <=
// SlabThickness; highlighted points get a horizontal reference line
// through their negated z, an outline ring and a name label.
func DorsalFrame(pts []model.Point, v View, hover Hover, primaryMinX, primaryMaxX float64, dark bool) Frame {
	f := Frame{
		Title:  "Dorsal View (x-z)",
		XLabel: "Anterior - Posterior",
		YLabel: "Left - Right",
		Bounds: v.Bounds(),
	}
	radius := f.Radius()

	low, high := slab(hover, func(p r2.Vec) float64 { return p.Y })
	if hover.OK {
		f.VLines = append(f.VLines, hover.Pos.X)
	}

	for _, p := range pts {
		x, y := float64(p.X), float64(p.Y)
		if y < low || y > high || x < primaryMinX || x > primaryMaxX {
			continue
		}
		pos := r2.Vec{X: x, Y: -float64(p.Z)}
		f.Markers = append(f.Markers, Marker{
			Pos:    pos,
			Radius: radius,
			Color:  MarkerColor(p, dark),
			Filled: true,
			Name:   p.Name,
		})
		if Highlighted(p, hover) {
			f.HLines = append(f.HLines, -float64(p.Z))
			f.Markers = append(f.Markers, Marker{
				Pos:    pos,
				Radius: radius + 2,
				Color:  HighlightColor,
				Filled: false,
				Name:   p.Name,
			})
			f.Labels = append(f.Labels, Label{
				Pos:  r2.Vec{X: pos.X + radius/labelOffsetDiv, Y: pos.Y + radius/labelOffsetDiv},
				Text: p.Name,
			})
		}
	}
	return f
}

// slab returns the [low, high] interval along the hidden axis, or the full
// real line when no hover is present.
func slab(hover Hover, axis func(r2.Vec) float64) (low, high float64) {
	if !hover.OK {
		return math.Inf(-1), math.Inf(1)
	}
	v := axis(hover.Pos)
	return v - SlabThickness, v + SlabThickness
}

// Highlighted reports whether the point lies within HighlightDistance of
// the hover, measured on the first two spatial components.
func Highlighted(p model.Point, hover Hover) bool {
	return hover.OK && l2Dist(float64(p.X), hover.Pos.X, float64(p.Y), hover.Pos.Y) < HighlightDistance
}

func l2Dist(x1, x2, y1, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
