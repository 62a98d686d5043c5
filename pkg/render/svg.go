package render

import (
	"fmt"
	"image/color"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/neurolens/neurolens/pkg/listview"
	"github.com/neurolens/neurolens/pkg/plot"
)

func renderSnapshotSVG(opts SnapshotOptions, frames Frames) error {
	file, err := os.Create(opts.Path)
	if err != nil {
		return err
	}
	defer file.Close()
	return renderSnapshotSVGToWriter(file, opts, frames)
}

func renderSnapshotSVGToWriter(w io.Writer, opts SnapshotOptions, frames Frames) error {
	pal := lightPalette()
	if opts.Dark {
		pal = darkPalette()
	}
	layout := snapshotLayout()

	canvas := svg.New(w)
	canvas.Start(snapWidth, snapHeight)
	canvas.Rect(0, 0, snapWidth, snapHeight, fill(cssRGBA(pal.Backdrop)))

	title := opts.Title
	if title == "" {
		title = "Landmark Snapshot"
	}
	canvas.Text(snapGap, 22, title, textStyle(cssRGBA(pal.Text), 16, true))
	canvas.Text(snapGap, 42,
		fmt.Sprintf("query: %q  side: %s  points: %d", opts.Query, opts.Side, len(opts.Points)),
		textStyle(cssRGBA(pal.Subtle), 13, false))

	drawListPanelSVG(canvas, opts, layout.List, pal)
	drawFrameSVG(canvas, frames.Primary, layout.Primary, pal)
	drawFrameSVG(canvas, frames.Anterior, layout.Anterior, pal)
	drawFrameSVG(canvas, frames.Dorsal, layout.Dorsal, pal)

	canvas.End()
	return nil
}

func drawFrameSVG(canvas *svg.SVG, f plot.Frame, r Rect, pal palette) {
	canvas.Rect(iround(r.X), iround(r.Y), iround(r.W), iround(r.H),
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", cssRGBA(pal.PaneBG), cssRGBA(pal.Stroke)))
	canvas.Text(iround(r.X)+8, iround(r.Y)+14, f.Title, textStyle(cssRGBA(pal.Text), 13, true))

	inner := Rect{
		X: r.X + paneMargin,
		Y: r.Y + paneTitleH,
		W: r.W - 2*paneMargin,
		H: r.H - paneTitleH - axisLabelH,
	}
	tr := plot.NewTransform(f.Bounds, inner.W, inner.H)

	canvas.Text(iround(inner.X+inner.W/2), iround(r.Y+r.H)-4, f.XLabel,
		textStyle(cssRGBA(pal.Subtle), 11, false)+";text-anchor:middle")
	if f.YLabel != "" {
		lx, ly := iround(r.X)+10, iround(inner.Y+inner.H/2)
		canvas.TranslateRotate(lx, ly, -90)
		canvas.Text(0, 0, f.YLabel,
			textStyle(cssRGBA(pal.Subtle), 11, false)+";text-anchor:middle")
		canvas.Gend()
	}

	// Clip everything positional to the pane interior.
	clipID := fmt.Sprintf("pane-%d-%d", iround(r.X), iround(r.Y))
	canvas.ClipPath(`id="` + clipID + `"`)
	canvas.Rect(iround(inner.X), iround(inner.Y), iround(inner.W), iround(inner.H))
	canvas.ClipEnd()
	canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, clipID))

	ref := fmt.Sprintf("stroke:%s;stroke-width:1.5", cssRGB(plot.HighlightColor))
	for _, y := range f.HLines {
		_, sy := tr.ToScreen(r2.Vec{X: f.Bounds.MinX, Y: y})
		canvas.Line(iround(inner.X), iround(inner.Y+sy), iround(inner.X+inner.W), iround(inner.Y+sy), ref)
	}
	for _, x := range f.VLines {
		sx, _ := tr.ToScreen(r2.Vec{X: x, Y: f.Bounds.MinY})
		canvas.Line(iround(inner.X+sx), iround(inner.Y), iround(inner.X+sx), iround(inner.Y+inner.H), ref)
	}

	for _, m := range f.Markers {
		sx, sy := tr.ToScreen(m.Pos)
		cx, cy := iround(inner.X+sx), iround(inner.Y+sy)
		if m.Filled {
			canvas.Circle(cx, cy, iround(m.Radius), fill(cssRGB(m.Color)))
		} else {
			canvas.Circle(cx, cy, iround(m.Radius),
				fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", cssRGB(m.Color)))
		}
	}

	for _, l := range f.Labels {
		sx, sy := tr.ToScreen(l.Pos)
		canvas.Text(iround(inner.X+sx), iround(inner.Y+sy), l.Text, textStyle(cssRGBA(pal.Text), 12, false))
	}

	canvas.Gend()
}

func drawListPanelSVG(canvas *svg.SVG, opts SnapshotOptions, r Rect, pal palette) {
	canvas.Rect(iround(r.X), iround(r.Y), iround(r.W), iround(r.H),
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", cssRGBA(pal.PaneBG), cssRGBA(pal.Stroke)))

	face := basicfont.Face7x13
	m := listview.ComputeMetrics(float64(face.Height), float64(face.Advance), 4, snapListSpacingY)
	rows := listview.Rows(opts.Points, listview.Viewport{Min: 0, Max: r.H}, m)
	for _, row := range rows {
		y := r.Y + row.Y
		if y+m.RowHeight > r.Y+r.H {
			break
		}
		canvas.Rect(iround(r.X)+1, iround(y), iround(m.RowWidth), iround(m.RowHeight), fill(cssRGB(row.Background)))
		canvas.Text(iround(r.X)+4, iround(y+m.RowHeight/2)+4, row.Text,
			textStyle(cssRGB(row.TextColor), 12, false))
	}
}

func fill(c string) string {
	return "fill:" + c
}

func textStyle(c string, size int, bold bool) string {
	weight := ""
	if bold {
		weight = ";font-weight:bold"
	}
	return fmt.Sprintf("fill:%s;font-size:%dpx;font-family:monospace%s", c, size, weight)
}

func cssRGB(c plot.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func cssRGBA(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
