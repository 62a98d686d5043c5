// Package render realizes plot frames and list rows on static backends:
// a gg raster context for PNG output and svgo for SVG output. The TUI has
// its own cell-based realization in pkg/ui.
package render

import (
	"image"
	"image/color"
	"math"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/neurolens/neurolens/pkg/plot"
)

// Rect is a pixel-space pane placement on the output surface.
type Rect struct {
	X, Y, W, H float64
}

// palette holds the chrome colors of a snapshot; the marker colors
// themselves come from the frames.
type palette struct {
	Backdrop color.RGBA
	PaneBG   color.RGBA
	Stroke   color.RGBA
	Text     color.RGBA
	Subtle   color.RGBA
}

func lightPalette() palette {
	return palette{
		Backdrop: color.RGBA{0xf9, 0xfa, 0xfb, 0xff},
		PaneBG:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		Stroke:   color.RGBA{0x22, 0x22, 0x22, 0xff},
		Text:     color.RGBA{0x11, 0x11, 0x11, 0xff},
		Subtle:   color.RGBA{0x66, 0x66, 0x66, 0xff},
	}
}

func darkPalette() palette {
	return palette{
		Backdrop: color.RGBA{0x1e, 0x1f, 0x29, 0xff},
		PaneBG:   color.RGBA{0x28, 0x2a, 0x36, 0xff},
		Stroke:   color.RGBA{0xbf, 0xbf, 0xbf, 0xff},
		Text:     color.RGBA{0xf8, 0xf8, 0xf2, 0xff},
		Subtle:   color.RGBA{0x88, 0x88, 0xaa, 0xff},
	}
}

const (
	paneTitleH  = 20.0
	paneMargin  = 8.0
	axisLabelH  = 16.0
	highlightPx = 1.5 // stroke width for reference lines
)

// renderFramePNG draws one frame into its own context, sized to the pane,
// so panes can be rasterized concurrently and composed afterwards.
func renderFramePNG(f plot.Frame, w, h int, pal palette) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(pal.PaneBG)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	inner := Rect{
		X: paneMargin,
		Y: paneTitleH,
		W: float64(w) - 2*paneMargin,
		H: float64(h) - paneTitleH - axisLabelH,
	}
	tr := plot.NewTransform(f.Bounds, inner.W, inner.H)

	// chrome
	dc.SetColor(pal.Text)
	dc.DrawStringAnchored(f.Title, paneMargin, paneTitleH/2, 0, 0.5)
	dc.SetColor(pal.Subtle)
	dc.DrawStringAnchored(f.XLabel, inner.X+inner.W/2, float64(h)-axisLabelH/2, 0.5, 0.5)
	if f.YLabel != "" {
		dc.Push()
		dc.RotateAbout(-math.Pi/2, paneMargin/2, inner.Y+inner.H/2)
		dc.DrawStringAnchored(f.YLabel, paneMargin/2, inner.Y+inner.H/2, 0.5, 0.5)
		dc.Pop()
	}
	dc.SetColor(pal.Stroke)
	dc.SetLineWidth(1)
	dc.DrawRectangle(inner.X, inner.Y, inner.W, inner.H)
	dc.Stroke()

	clipToPane := func() {
		dc.DrawRectangle(inner.X, inner.Y, inner.W, inner.H)
		dc.Clip()
	}

	// reference lines under the markers
	dc.Push()
	clipToPane()
	dc.SetColor(color.RGBA{plot.HighlightColor.R, plot.HighlightColor.G, plot.HighlightColor.B, 0xff})
	dc.SetLineWidth(highlightPx)
	for _, y := range f.HLines {
		_, sy := tr.ToScreen(r2.Vec{X: f.Bounds.MinX, Y: y})
		dc.DrawLine(inner.X, inner.Y+sy, inner.X+inner.W, inner.Y+sy)
		dc.Stroke()
	}
	for _, x := range f.VLines {
		sx, _ := tr.ToScreen(r2.Vec{X: x, Y: f.Bounds.MinY})
		dc.DrawLine(inner.X+sx, inner.Y, inner.X+sx, inner.Y+inner.H)
		dc.Stroke()
	}

	for _, m := range f.Markers {
		sx, sy := tr.ToScreen(m.Pos)
		px, py := inner.X+sx, inner.Y+sy
		dc.SetColor(color.RGBA{m.Color.R, m.Color.G, m.Color.B, 0xff})
		if m.Filled {
			dc.DrawCircle(px, py, m.Radius)
			dc.Fill()
		} else {
			dc.SetLineWidth(highlightPx)
			dc.DrawCircle(px, py, m.Radius)
			dc.Stroke()
		}
	}

	dc.SetColor(pal.Text)
	for _, l := range f.Labels {
		sx, sy := tr.ToScreen(l.Pos)
		dc.DrawStringAnchored(l.Text, inner.X+sx, inner.Y+sy, 0, 0.5)
	}
	dc.Pop()

	return dc.Image()
}

// iround snaps pixel coordinates for the SVG backend.
func iround(v float64) int {
	return int(math.Round(v))
}
