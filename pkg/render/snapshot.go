package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/neurolens/neurolens/pkg/listview"
	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/plot"
)

// SnapshotOptions controls static snapshot export.
type SnapshotOptions struct {
	Path   string        // Output path; format inferred from extension when Format empty
	Format string        // "svg" or "png" (case-insensitive). If empty, inferred from Path.
	Title  string        // Optional title rendered in the header
	Points []model.Point // Visible set to render (already filtered and sorted)
	Query  string        // Shown in the header for provenance
	Side   model.Side    // Shown in the header for provenance
	Hover  plot.Hover    // Optional cursor position driving the cross-view highlight
	Dark   bool          // Dark palette and dark-theme marker rules
}

// Snapshot surface layout, in pixels.
const (
	snapWidth    = 1280
	snapHeight   = 800
	snapHeaderH  = 56
	snapListW    = 232
	snapGap      = 8
	snapListSpacingY = 4.0
)

// SaveSnapshot renders the three projections plus the visible-point listing
// to a static image. The primary view is fitted to the visible set; a
// hover, when given, drives the same slab filtering and highlighting the
// interactive views use.
func SaveSnapshot(opts SnapshotOptions) error {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".png":
			format = "png"
		case ".svg":
			format = "svg"
		default:
			format = "svg" // safe default
			if opts.Path != "" && filepath.Ext(opts.Path) == "" {
				opts.Path = opts.Path + ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	frames := BuildFrames(opts.Points, opts.Hover, opts.Dark)

	switch format {
	case "png":
		return renderSnapshotPNG(opts, frames)
	default:
		return renderSnapshotSVG(opts, frames)
	}
}

// Frames bundles the per-redraw output of the projection engine: the
// primary frame plus the two cursor-linked auxiliary frames.
type Frames struct {
	Primary  plot.Frame
	Anterior plot.Frame
	Dorsal   plot.Frame
}

// BuildFrames derives all three projection frames for one redraw, wiring
// the primary view's horizontal bounds into the dorsal view the same way
// every backend must.
func BuildFrames(pts []model.Point, hover plot.Hover, dark bool) Frames {
	primary := plot.NewView(plot.FitBounds(pts))
	anterior := plot.NewView(plot.DefaultAnteriorBounds())
	dorsal := plot.NewView(plot.DefaultDorsalBounds(primary.Bounds()))
	dorsal.SetHorizontal(primary.Bounds().MinX, primary.Bounds().MaxX)

	pb := primary.Bounds()
	return Frames{
		Primary:  plot.PrimaryFrame(pts, primary, dark),
		Anterior: plot.AnteriorFrame(pts, anterior, hover, dark),
		Dorsal:   plot.DorsalFrame(pts, dorsal, hover, pb.MinX, pb.MaxX, dark),
	}
}

type paneLayout struct {
	List     Rect
	Primary  Rect
	Anterior Rect
	Dorsal   Rect
}

func snapshotLayout() paneLayout {
	plotX := float64(snapListW + snapGap)
	plotW := float64(snapWidth) - plotX - snapGap
	bodyY := float64(snapHeaderH + snapGap)
	bodyH := float64(snapHeight) - bodyY - snapGap
	primaryH := bodyH * 0.55
	auxY := bodyY + primaryH + snapGap
	auxH := bodyH - primaryH - snapGap
	auxW := (plotW - snapGap) / 2

	return paneLayout{
		List:     Rect{X: snapGap, Y: bodyY, W: snapListW - 2*snapGap, H: bodyH},
		Primary:  Rect{X: plotX, Y: bodyY, W: plotW, H: primaryH},
		Anterior: Rect{X: plotX, Y: auxY, W: auxW, H: auxH},
		Dorsal:   Rect{X: plotX + auxW + snapGap, Y: auxY, W: auxW, H: auxH},
	}
}

func renderSnapshotPNG(opts SnapshotOptions, frames Frames) error {
	pal := lightPalette()
	if opts.Dark {
		pal = darkPalette()
	}
	layout := snapshotLayout()

	// The three panes rasterize independently, so render them in parallel
	// and compose afterwards.
	var primaryImg, anteriorImg, dorsalImg image.Image
	var g errgroup.Group
	g.Go(func() error {
		primaryImg = renderFramePNG(frames.Primary, int(layout.Primary.W), int(layout.Primary.H), pal)
		return nil
	})
	g.Go(func() error {
		anteriorImg = renderFramePNG(frames.Anterior, int(layout.Anterior.W), int(layout.Anterior.H), pal)
		return nil
	})
	g.Go(func() error {
		dorsalImg = renderFramePNG(frames.Dorsal, int(layout.Dorsal.W), int(layout.Dorsal.H), pal)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	dc := gg.NewContext(snapWidth, snapHeight)
	dc.SetColor(pal.Backdrop)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	drawHeaderPNG(dc, opts, pal)
	drawListPanelPNG(dc, opts.Points, layout.List, pal)

	dc.DrawImage(primaryImg, iround(layout.Primary.X), iround(layout.Primary.Y))
	dc.DrawImage(anteriorImg, iround(layout.Anterior.X), iround(layout.Anterior.Y))
	dc.DrawImage(dorsalImg, iround(layout.Dorsal.X), iround(layout.Dorsal.Y))

	return dc.SavePNG(opts.Path)
}

func drawHeaderPNG(dc *gg.Context, opts SnapshotOptions, pal palette) {
	title := opts.Title
	if strings.TrimSpace(title) == "" {
		title = "Landmark Snapshot"
	}
	dc.SetColor(pal.Text)
	dc.DrawStringAnchored(title, snapGap, 18, 0, 0.5)
	dc.SetColor(pal.Subtle)
	dc.DrawStringAnchored(fmt.Sprintf("query: %q  side: %s  points: %d", opts.Query, opts.Side, len(opts.Points)), snapGap, 38, 0, 0.5)
}

// drawListPanelPNG draws as many list rows as fit the panel, through the
// same virtualized row pipeline the interactive list uses.
func drawListPanelPNG(dc *gg.Context, pts []model.Point, r Rect, pal palette) {
	dc.SetColor(pal.PaneBG)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Fill()
	dc.SetColor(pal.Stroke)
	dc.SetLineWidth(1)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Stroke()

	face := basicfont.Face7x13
	m := listview.ComputeMetrics(float64(face.Height), float64(face.Advance), 4, snapListSpacingY)
	rows := listview.Rows(pts, listview.Viewport{Min: 0, Max: r.H}, m)
	for _, row := range rows {
		y := r.Y + row.Y
		if y+m.RowHeight > r.Y+r.H {
			break
		}
		dc.SetColor(row.Background)
		dc.DrawRectangle(r.X+1, y, m.RowWidth, m.RowHeight)
		dc.Fill()
		dc.SetColor(row.TextColor)
		dc.DrawStringAnchored(row.Text, r.X+4, y+m.RowHeight/2, 0, 0.5)
	}
}
