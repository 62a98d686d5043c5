package plot

import (
	"image/color"

	"github.com/neurolens/neurolens/pkg/model"
)

// RGB is an 8-bit-per-channel marker color.
type RGB struct {
	R, G, B uint8
}

// White substitutes pure black swatches on dark backgrounds.
var White = RGB{255, 255, 255}

// HighlightColor is used for reference lines, outline markers and labels.
var HighlightColor = RGB{255, 112, 112}

// RGBA implements color.Color so backends can hand an RGB straight to the
// standard image APIs.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// MarkerColor derives the plot marker color for a point. Pure black becomes
// white only under a dark theme, so markers stay visible against a dark
// canvas without altering data semantics under a light theme. Points on the
// negative side of the Z axis are dimmed to 80% as a depth cue.
func MarkerColor(p model.Point, dark bool) RGB {
	rgb := p.RGB8()
	c := RGB{rgb[0], rgb[1], rgb[2]}
	if p.IsBlack() && dark {
		c = White
	}
	if p.Z < 0 {
		c = c.gammaMultiply(0.8)
	}
	return c
}

func (c RGB) gammaMultiply(f float64) RGB {
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}
