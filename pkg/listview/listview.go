// Package listview renders the point listing virtualized: only the rows
// intersecting the current scroll viewport are materialized, so redraw
// cost is independent of the total row count.
package listview

import (
	"math"

	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/plot"
)

// NameColumns is the fixed monospace character budget a row is sized for.
const NameColumns = 28

// Metrics holds the per-redraw row geometry, derived from the active font.
type Metrics struct {
	RowHeight float64
	RowWidth  float64
}

// ComputeMetrics derives row geometry from font metrics: row height is the
// text line height plus vertical spacing, row width is NameColumns glyph
// widths plus horizontal spacing.
func ComputeMetrics(lineHeight, glyphWidth, spacingX, spacingY float64) Metrics {
	return Metrics{
		RowHeight: lineHeight + spacingY,
		RowWidth:  glyphWidth*NameColumns + spacingX,
	}
}

// Viewport is the visible scroll region in the same vertical units as
// Metrics.RowHeight.
type Viewport struct {
	Min float64
	Max float64
}

// VisibleRange returns the half-open index window [first, last) of rows
// overlapping the viewport. Indices outside the window are never drawn.
func VisibleRange(vp Viewport, rowHeight float64, total int) (first, last int) {
	if total <= 0 || rowHeight <= 0 {
		return 0, 0
	}
	first = int(math.Floor(vp.Min / rowHeight))
	if first < 0 {
		first = 0
	}
	last = int(math.Ceil(vp.Max/rowHeight)) + 1
	if last > total {
		last = total
	}
	if first > last {
		first = last
	}
	return first, last
}

// TotalHeight is the full scroll height to reserve so scrollbar
// proportions stay correct even though only a window of rows is drawn.
func TotalHeight(total int, m Metrics) float64 {
	return float64(total) * m.RowHeight
}

// Row is one materialized list row: a filled background rectangle with the
// formatted point text drawn on top.
type Row struct {
	Index      int
	Y          float64 // top edge, Index * RowHeight
	Text       string
	Background plot.RGB
	TextColor  plot.RGB
}

// Rows materializes the rows of pts that overlap the viewport. A pure
// black swatch is substituted with pure white so it never disappears on a
// dark background; text is black when luminance is 0 or above 0.5, white
// otherwise.
func Rows(pts []model.Point, vp Viewport, m Metrics) []Row {
	first, last := VisibleRange(vp, m.RowHeight, len(pts))
	if first >= last {
		return nil
	}
	rows := make([]Row, 0, last-first)
	for i := first; i < last; i++ {
		p := pts[i]
		rows = append(rows, Row{
			Index:      i,
			Y:          float64(i) * m.RowHeight,
			Text:       p.ListRow(),
			Background: rowBackground(p),
			TextColor:  rowTextColor(p),
		})
	}
	return rows
}

func rowBackground(p model.Point) plot.RGB {
	if p.IsBlack() {
		return plot.White
	}
	rgb := p.RGB8()
	return plot.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
}

func rowTextColor(p model.Point) plot.RGB {
	lum := p.Luminance()
	if lum == 0 || lum > 0.5 {
		return plot.RGB{}
	}
	return plot.White
}
