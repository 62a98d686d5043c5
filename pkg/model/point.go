// Package model defines the core landmark record and the hemisphere
// selector shared by every other package.
package model

import "fmt"

// Point is a single named anatomical landmark: a 3D position in arbitrary
// spatial units plus a color with channels normalized to [0, 1].
// Points are immutable once loaded.
type Point struct {
	Name string
	X    float32
	Y    float32
	Z    float32
	R    float32
	G    float32
	B    float32
}

// RGB8 returns the 8-bit-per-channel color derived from the normalized
// channels. Channels outside [0, 1] are clamped.
func (p Point) RGB8() [3]uint8 {
	return [3]uint8{
		clamp8(p.R * 255),
		clamp8(p.G * 255),
		clamp8(p.B * 255),
	}
}

// Luminance returns the Rec. 709 relative luminance of the point color.
func (p Point) Luminance() float32 {
	return 0.2126*p.R + 0.7152*p.G + 0.0722*p.B
}

// IsBlack reports whether the derived 8-bit color is pure black. Pure
// black swatches are substituted with white at render time so they stay
// visible on dark backgrounds.
func (p Point) IsBlack() bool {
	rgb := p.RGB8()
	return rgb[0] == 0 && rgb[1] == 0 && rgb[2] == 0
}

// ListRow formats the point for the list panel: name left-aligned to five
// cells, coordinates at one decimal place, right-aligned in five cells.
func (p Point) ListRow() string {
	return fmt.Sprintf("%-5s (%5.1f, %5.1f, %5.1f)", p.Name, p.X, p.Y, p.Z)
}

func clamp8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
