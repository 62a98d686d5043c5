package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/neurolens/neurolens/pkg/plot"
)

// The plot panes rasterize frames into half-block cells: every terminal
// cell carries two vertically stacked pixels, the top one as the
// foreground of "▀" and the bottom one as the background. A pane of
// w x h cells is therefore a w x 2h pixel surface.

// refRadiusPx is the pixel width the marker radius formula was tuned
// for; terminal grids scale down from it.
const refRadiusPx = 400.0

// pixelGrid is a w x h pixel surface with per-pixel color and a set flag.
type pixelGrid struct {
	w, h int
	px   []plot.RGB
	set  []bool
}

func newPixelGrid(wCells, hCells int) *pixelGrid {
	w, h := wCells, 2*hCells
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	return &pixelGrid{
		w:   w,
		h:   h,
		px:  make([]plot.RGB, w*h),
		set: make([]bool, w*h),
	}
}

func (g *pixelGrid) setPixel(x, y int, c plot.RGB) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	i := y*g.w + x
	g.px[i] = c
	g.set[i] = true
}

func (g *pixelGrid) fillCircle(cx, cy, r float64, c plot.RGB) {
	lo := int(math.Floor(-r - 1))
	hi := int(math.Ceil(r + 1))
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			if float64(dx)*float64(dx)+float64(dy)*float64(dy) <= r*r {
				g.setPixel(int(math.Round(cx))+dx, int(math.Round(cy))+dy, c)
			}
		}
	}
}

func (g *pixelGrid) strokeCircle(cx, cy, r float64, c plot.RGB) {
	steps := int(math.Ceil(2 * math.Pi * math.Max(r, 1)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		g.setPixel(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))), c)
	}
}

func (g *pixelGrid) hline(y int, c plot.RGB) {
	for x := 0; x < g.w; x++ {
		g.setPixel(x, y, c)
	}
}

func (g *pixelGrid) vline(x int, c plot.RGB) {
	for y := 0; y < g.h; y++ {
		g.setPixel(x, y, c)
	}
}

// scaleRadius converts a frame radius in display units to grid pixels.
func scaleRadius(r float64, gridW int) float64 {
	s := r * float64(gridW) / refRadiusPx
	return math.Max(0.5, s)
}

// FrameTransform returns the data transform for a pane of the given cell
// size, matching the pixel surface RenderFrame draws on.
func FrameTransform(f plot.Frame, wCells, hCells int) plot.Transform {
	return plot.NewTransform(f.Bounds, float64(wCells), float64(2*hCells))
}

// DataAt maps a cell position inside a pane's grid to data space.
func DataAt(f plot.Frame, wCells, hCells, cellX, cellY int) r2.Vec {
	tr := FrameTransform(f, wCells, hCells)
	return tr.FromScreen(float64(cellX)+0.5, (float64(cellY)+0.5)*2)
}

// RenderFrame rasterizes a frame into a block of terminal lines,
// wCells x hCells cells, with marker labels overlaid as text.
func RenderFrame(r *lipgloss.Renderer, f plot.Frame, wCells, hCells int) string {
	if wCells < 1 || hCells < 1 {
		return ""
	}
	g := newPixelGrid(wCells, hCells)
	tr := FrameTransform(f, wCells, hCells)

	for _, y := range f.HLines {
		_, sy := tr.ToScreen(r2.Vec{X: f.Bounds.MinX, Y: y})
		g.hline(int(math.Round(sy)), plot.HighlightColor)
	}
	for _, x := range f.VLines {
		sx, _ := tr.ToScreen(r2.Vec{X: x, Y: f.Bounds.MinY})
		g.vline(int(math.Round(sx)), plot.HighlightColor)
	}

	for _, m := range f.Markers {
		sx, sy := tr.ToScreen(m.Pos)
		rad := scaleRadius(m.Radius, g.w)
		if m.Filled {
			g.fillCircle(sx, sy, rad, m.Color)
		} else {
			g.strokeCircle(sx, sy, rad, m.Color)
		}
	}

	overlay := labelOverlay(f, tr, wCells, hCells)
	return renderGrid(r, g, overlay, wCells, hCells)
}

// labelOverlay places label text into a cell grid, left-clipped to the pane.
func labelOverlay(f plot.Frame, tr plot.Transform, wCells, hCells int) [][]rune {
	if len(f.Labels) == 0 {
		return nil
	}
	overlay := make([][]rune, hCells)
	for i := range overlay {
		overlay[i] = make([]rune, wCells)
	}
	for _, l := range f.Labels {
		sx, sy := tr.ToScreen(l.Pos)
		row := int(math.Round(sy / 2))
		col := int(math.Round(sx))
		if row < 0 || row >= hCells {
			continue
		}
		for _, ch := range l.Text {
			if col >= wCells {
				break
			}
			if col >= 0 {
				overlay[row][col] = ch
			}
			col++
		}
	}
	return overlay
}

func renderGrid(r *lipgloss.Renderer, g *pixelGrid, overlay [][]rune, wCells, hCells int) string {
	labelStyle := r.NewStyle().Foreground(ColorText).Bold(true)

	var b strings.Builder
	for row := 0; row < hCells; row++ {
		for col := 0; col < wCells; col++ {
			if overlay != nil && overlay[row][col] != 0 {
				b.WriteString(labelStyle.Render(string(overlay[row][col])))
				continue
			}
			b.WriteString(renderCell(r, g, col, row))
		}
		if row < hCells-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// renderCell emits one half-block cell from the pixel pair (col, 2row)
// and (col, 2row+1).
func renderCell(r *lipgloss.Renderer, g *pixelGrid, col, row int) string {
	ti := (2*row)*g.w + col
	bi := (2*row+1)*g.w + col
	topSet, botSet := g.set[ti], g.set[bi]

	switch {
	case topSet && botSet:
		return r.NewStyle().
			Foreground(hexColor(g.px[ti])).
			Background(hexColor(g.px[bi])).
			Render("▀")
	case topSet:
		return r.NewStyle().Foreground(hexColor(g.px[ti])).Render("▀")
	case botSet:
		return r.NewStyle().Foreground(hexColor(g.px[bi])).Render("▄")
	default:
		return " "
	}
}

func hexColor(c plot.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
