package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/neurolens/neurolens/pkg/model"
	"github.com/neurolens/neurolens/pkg/plot"
)

func snapshotPoints() []model.Point {
	return []model.Point{
		{Name: "AVAL", X: 1.2, Y: -3.4, Z: 2.1, R: 1, G: 0.2, B: 0.2},
		{Name: "AVAR", X: 1.2, Y: -3.4, Z: -2.1, R: 1, G: 0.2, B: 0.2},
		{Name: "RID", X: -4.0, Y: 6.5, Z: 0, R: 0.1, G: 0.8, B: 0.3},
	}
}

func TestSaveSnapshotSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	err := SaveSnapshot(SnapshotOptions{
		Path:   path,
		Title:  "test snapshot",
		Points: snapshotPoints(),
		Query:  "AVA",
		Side:   model.SideBoth,
	})
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output does not look like SVG")
	}
	for _, want := range []string{"test snapshot", "AVAL", "AVAR", "RID"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestSaveSnapshotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	err := SaveSnapshot(SnapshotOptions{Path: path, Points: snapshotPoints()})
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	// PNG signature.
	if len(data) < 8 || !bytes.Equal(data[:4], []byte("\x89PNG")) {
		t.Error("output does not look like PNG")
	}
}

func TestSaveSnapshotExplicitFormat(t *testing.T) {
	// Format field wins over the path extension.
	path := filepath.Join(t.TempDir(), "out.svg")
	err := SaveSnapshot(SnapshotOptions{Path: path, Format: "png", Points: snapshotPoints()})
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if len(data) < 4 || !bytes.Equal(data[:4], []byte("\x89PNG")) {
		t.Error("explicit png format was ignored")
	}
}

func TestSaveSnapshotDefaultExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	if err := SaveSnapshot(SnapshotOptions{Path: path, Points: snapshotPoints()}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if _, err := os.Stat(path + ".svg"); err != nil {
		t.Errorf("expected %s.svg to be written: %v", path, err)
	}
}

func TestSaveSnapshotErrors(t *testing.T) {
	if err := SaveSnapshot(SnapshotOptions{Path: ""}); err == nil {
		t.Error("empty path accepted")
	}
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := SaveSnapshot(SnapshotOptions{Path: path, Format: "gif"}); err == nil {
		t.Error("unsupported format accepted")
	} else if !strings.Contains(err.Error(), "gif") {
		t.Errorf("error does not name the format: %v", err)
	}
}

func TestBuildFrames(t *testing.T) {
	pts := snapshotPoints()
	frames := BuildFrames(pts, plot.Hover{}, false)

	pb := frames.Primary.Bounds
	db := frames.Dorsal.Bounds
	if db.MinX != pb.MinX || db.MaxX != pb.MaxX {
		t.Errorf("dorsal horizontal %v..%v does not mirror primary %v..%v",
			db.MinX, db.MaxX, pb.MinX, pb.MaxX)
	}
	if db.MinY != -15 || db.MaxY != 15 {
		t.Errorf("dorsal vertical = %v..%v, want -15..15", db.MinY, db.MaxY)
	}
	want := plot.DefaultAnteriorBounds()
	if frames.Anterior.Bounds != want {
		t.Errorf("anterior bounds = %+v, want %+v", frames.Anterior.Bounds, want)
	}
	if len(frames.Primary.Markers) != len(pts) {
		t.Errorf("primary markers = %d, want %d", len(frames.Primary.Markers), len(pts))
	}
}

func TestBuildFramesHoverLinks(t *testing.T) {
	pts := snapshotPoints()
	// Hover right on AVAL/AVAR's shared x-y position.
	hover := plot.Hover{Pos: r2.Vec{X: 1.2, Y: -3.4}, OK: true}
	frames := BuildFrames(pts, hover, false)

	if len(frames.Anterior.HLines) != 1 || frames.Anterior.HLines[0] != hover.Pos.Y {
		t.Errorf("anterior HLines = %v, want [%v]", frames.Anterior.HLines, hover.Pos.Y)
	}
	if len(frames.Dorsal.VLines) != 1 || frames.Dorsal.VLines[0] != hover.Pos.X {
		t.Errorf("dorsal VLines = %v, want [%v]", frames.Dorsal.VLines, hover.Pos.X)
	}
	if len(frames.Anterior.Labels) != 2 {
		t.Errorf("anterior labels = %d, want 2 (both AVA twins matched)", len(frames.Anterior.Labels))
	}
}

func TestRenderSnapshotSVGToWriter(t *testing.T) {
	var buf bytes.Buffer
	opts := SnapshotOptions{Points: snapshotPoints(), Dark: true}
	frames := BuildFrames(opts.Points, plot.Hover{}, true)
	if err := renderSnapshotSVGToWriter(&buf, opts, frames); err != nil {
		t.Fatalf("renderSnapshotSVGToWriter: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("writer output is not a complete SVG document")
	}
	if !strings.Contains(out, "clip-path") {
		t.Error("pane clipping missing from SVG output")
	}
}
