package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/neurolens/neurolens/pkg/listview"
	"github.com/neurolens/neurolens/pkg/model"
)

// listPane shows the filtered points as one colored row per terminal
// line, scrolled by a row offset. Row derivation (text, swatch
// background, contrast-picked text color) lives in pkg/listview; this
// type only maps it onto terminal cells.
type listPane struct {
	offset int // first visible row index
}

// terminal cells are the font metric: one line high, one glyph wide
var listMetrics = listview.ComputeMetrics(1, 1, 0, 0)

func (l *listPane) scrollBy(delta, visible, total int) {
	l.offset += delta
	l.clamp(visible, total)
}

func (l *listPane) clamp(visible, total int) {
	max := total - visible
	if max < 0 {
		max = 0
	}
	if l.offset > max {
		l.offset = max
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// render draws the visible window of pts into a w x h cell block.
func (l *listPane) render(r *lipgloss.Renderer, pts []model.Point, w, h int) string {
	if w < 1 || h < 1 {
		return ""
	}
	l.clamp(h, len(pts))

	vp := listview.Viewport{
		Min: float64(l.offset) * listMetrics.RowHeight,
		Max: float64(l.offset+h) * listMetrics.RowHeight,
	}
	rows := listview.Rows(pts, vp, listMetrics)

	lines := make([]string, 0, h)
	for _, row := range rows {
		if len(lines) >= h {
			break
		}
		text := runewidth.Truncate(row.Text, w, "…")
		text = text + strings.Repeat(" ", max(0, w-runewidth.StringWidth(text)))
		lines = append(lines, r.NewStyle().
			Background(hexColor(row.Background)).
			Foreground(hexColor(row.TextColor)).
			Render(text))
	}
	for len(lines) < h {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return strings.Join(lines, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
