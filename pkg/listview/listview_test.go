package listview

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/plot"
)

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(14, 7, 4, 2)
	if m.RowHeight != 16 {
		t.Errorf("RowHeight = %v, want 16", m.RowHeight)
	}
	if m.RowWidth != 7*NameColumns+4 {
		t.Errorf("RowWidth = %v, want %v", m.RowWidth, 7*NameColumns+4)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name        string
		vp          Viewport
		rowH        float64
		total       int
		first, last int
	}{
		{"top of list", Viewport{0, 100}, 20, 50, 0, 6},
		{"mid scroll", Viewport{130, 250}, 20, 50, 6, 14},
		{"clamped to total", Viewport{900, 1100}, 20, 50, 45, 50},
		{"beyond end", Viewport{2000, 2100}, 20, 50, 50, 50},
		{"empty list", Viewport{0, 100}, 20, 0, 0, 0},
		{"degenerate viewport", Viewport{50, 50}, 20, 50, 2, 4},
		{"zero row height", Viewport{0, 100}, 0, 50, 0, 0},
	}
	for _, tt := range tests {
		first, last := VisibleRange(tt.vp, tt.rowH, tt.total)
		if first != tt.first || last != tt.last {
			t.Errorf("%s: VisibleRange = [%d, %d), want [%d, %d)",
				tt.name, first, last, tt.first, tt.last)
		}
	}
}

func TestVisibleRangeWindow(t *testing.T) {
	// The window is exactly [max(0, floor(min/h)), min(total, ceil(max/h)+1)).
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 10000).Draw(t, "total")
		rowH := rapid.Float64Range(1, 50).Draw(t, "rowH")
		min := rapid.Float64Range(0, 1e5).Draw(t, "min")
		span := rapid.Float64Range(0, 2000).Draw(t, "span")

		first, last := VisibleRange(Viewport{Min: min, Max: min + span}, rowH, total)

		if first < 0 || last > total || first > last {
			t.Fatalf("window [%d, %d) out of range, total %d", first, last, total)
		}
		if total == 0 {
			return
		}
		wantFirst := int(math.Floor(min / rowH))
		if wantFirst < 0 {
			wantFirst = 0
		}
		wantLast := int(math.Ceil((min+span)/rowH)) + 1
		if wantLast > total {
			wantLast = total
		}
		if wantFirst > wantLast {
			wantFirst = wantLast
		}
		if first != wantFirst || last != wantLast {
			t.Fatalf("window [%d, %d), want [%d, %d)", first, last, wantFirst, wantLast)
		}
	})
}

func TestTotalHeight(t *testing.T) {
	m := Metrics{RowHeight: 16}
	if got := TotalHeight(100, m); got != 1600 {
		t.Errorf("TotalHeight = %v, want 1600", got)
	}
	if got := TotalHeight(0, m); got != 0 {
		t.Errorf("TotalHeight(0) = %v, want 0", got)
	}
}

func TestRowsWindowAndGeometry(t *testing.T) {
	pts := make([]model.Point, 100)
	for i := range pts {
		pts[i] = model.Point{Name: "N", R: 0.5, G: 0.5, B: 0.5}
	}
	m := Metrics{RowHeight: 20, RowWidth: 200}
	rows := Rows(pts, Viewport{Min: 130, Max: 250}, m)
	if len(rows) == 0 {
		t.Fatal("no rows materialized")
	}
	if rows[0].Index != 6 {
		t.Errorf("first row index = %d, want 6", rows[0].Index)
	}
	for _, r := range rows {
		if r.Y != float64(r.Index)*m.RowHeight {
			t.Errorf("row %d: Y = %v, want %v", r.Index, r.Y, float64(r.Index)*m.RowHeight)
		}
	}
}

func TestRowsDegenerateViewport(t *testing.T) {
	pts := []model.Point{{Name: "a"}}
	rows := Rows(pts, Viewport{Min: 0, Max: 0}, Metrics{RowHeight: 0})
	if rows != nil {
		t.Errorf("degenerate metrics should yield no rows, got %d", len(rows))
	}
}

func TestRowColors(t *testing.T) {
	m := Metrics{RowHeight: 20}
	vp := Viewport{Min: 0, Max: 20}

	// pure black swatch renders as white with black text
	black := Rows([]model.Point{{Name: "b"}}, vp, m)[0]
	if black.Background != plot.White {
		t.Errorf("black point background = %v, want white", black.Background)
	}
	if black.TextColor != (plot.RGB{}) {
		t.Errorf("black point text = %v, want black", black.TextColor)
	}

	// bright swatch gets black text
	bright := Rows([]model.Point{{Name: "w", R: 1, G: 1, B: 1}}, vp, m)[0]
	if bright.TextColor != (plot.RGB{}) {
		t.Errorf("bright swatch text = %v, want black", bright.TextColor)
	}

	// dim swatch gets white text
	dim := Rows([]model.Point{{Name: "d", R: 0.3}}, vp, m)[0]
	if dim.TextColor != plot.White {
		t.Errorf("dim swatch text = %v, want white", dim.TextColor)
	}
	if dim.Background == plot.White {
		t.Error("dim swatch background should keep its own color")
	}
}
