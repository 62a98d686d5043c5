package model

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRGB8(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want [3]uint8
	}{
		{"black", Point{R: 0, G: 0, B: 0}, [3]uint8{0, 0, 0}},
		{"white", Point{R: 1, G: 1, B: 1}, [3]uint8{255, 255, 255}},
		{"mid", Point{R: 0.5, G: 0.5, B: 0.5}, [3]uint8{128, 128, 128}},
		{"clamp low", Point{R: -0.5, G: 0, B: 0}, [3]uint8{0, 0, 0}},
		{"clamp high", Point{R: 1.5, G: 1, B: 1}, [3]uint8{255, 255, 255}},
	}
	for _, tt := range tests {
		if got := tt.p.RGB8(); got != tt.want {
			t.Errorf("%s: RGB8() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRGB8Range(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := Point{
			R: float32(rapid.Float64Range(-2, 2).Draw(t, "r")),
			G: float32(rapid.Float64Range(-2, 2).Draw(t, "g")),
			B: float32(rapid.Float64Range(-2, 2).Draw(t, "b")),
		}
		rgb := p.RGB8()
		for i, ch := range []float32{p.R, p.G, p.B} {
			if ch <= 0 && rgb[i] != 0 {
				t.Errorf("channel %d: %v should clamp to 0, got %d", i, ch, rgb[i])
			}
			if ch >= 1 && rgb[i] != 255 {
				t.Errorf("channel %d: %v should clamp to 255, got %d", i, ch, rgb[i])
			}
		}
	})
}

func TestLuminance(t *testing.T) {
	white := Point{R: 1, G: 1, B: 1}
	if got := white.Luminance(); got < 0.999 || got > 1.001 {
		t.Errorf("white luminance = %v, want 1", got)
	}
	black := Point{}
	if got := black.Luminance(); got != 0 {
		t.Errorf("black luminance = %v, want 0", got)
	}
	green := Point{G: 1}
	if got := green.Luminance(); got != 0.7152 {
		t.Errorf("green luminance = %v, want 0.7152", got)
	}
}

func TestIsBlack(t *testing.T) {
	if !(Point{}).IsBlack() {
		t.Error("zero color should be black")
	}
	if (Point{R: 0.5}).IsBlack() {
		t.Error("nonzero color should not be black")
	}
	// below half a quantization step still rounds to 0
	if !(Point{R: 0.001, G: 0.001, B: 0.001}).IsBlack() {
		t.Error("sub-step channels should quantize to black")
	}
}

func TestListRow(t *testing.T) {
	p := Point{Name: "AVAL", X: 1.25, Y: -3, Z: 10}
	got := p.ListRow()
	want := "AVAL  (  1.2,  -3.0,  10.0)"
	if got != want {
		t.Errorf("ListRow() = %q, want %q", got, want)
	}
}
