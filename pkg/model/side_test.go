package model

import (
	"testing"

	"pgregory.net/rapid"
)

func TestSideCycle(t *testing.T) {
	if SideLeft.Next() != SideRight {
		t.Error("Left should cycle to Right")
	}
	if SideRight.Next() != SideBoth {
		t.Error("Right should cycle to Both")
	}
	if SideBoth.Next() != SideLeft {
		t.Error("Both should cycle to Left")
	}
}

func TestSideContains(t *testing.T) {
	tests := []struct {
		side Side
		z    float32
		want bool
	}{
		{SideLeft, 1, true},
		{SideLeft, 0, true}, // boundary belongs to Left
		{SideLeft, -1, false},
		{SideRight, -0.001, true},
		{SideRight, 0, false},
		{SideRight, 1, false},
		{SideBoth, -5, true},
		{SideBoth, 0, true},
		{SideBoth, 5, true},
	}
	for _, tt := range tests {
		if got := tt.side.Contains(tt.z); got != tt.want {
			t.Errorf("%s.Contains(%v) = %v, want %v", tt.side, tt.z, got, tt.want)
		}
	}
}

func TestSidePartition(t *testing.T) {
	// Left and Right partition every z: exactly one of them passes.
	rapid.Check(t, func(t *rapid.T) {
		z := float32(rapid.Float64Range(-100, 100).Draw(t, "z"))
		l, r := SideLeft.Contains(z), SideRight.Contains(z)
		if l == r {
			t.Errorf("z=%v: Left=%v Right=%v, want exactly one", z, l, r)
		}
		if !SideBoth.Contains(z) {
			t.Errorf("z=%v: Both should always pass", z)
		}
	})
}

func TestParseSide(t *testing.T) {
	for _, s := range []Side{SideLeft, SideRight, SideBoth} {
		if got := ParseSide(s.String()); got != s {
			t.Errorf("ParseSide(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if got := ParseSide("garbage"); got != SideBoth {
		t.Errorf("unknown label should fall back to Both, got %v", got)
	}
}
