package model

// Side is the tri-state hemisphere selector. The hemisphere of a point is
// encoded as the sign of its Z component, not stored as an attribute:
// z >= 0 belongs to the left side.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideBoth
)

// Next cycles Left -> Right -> Both -> Left.
func (s Side) Next() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideBoth
	default:
		return SideLeft
	}
}

// Contains reports whether a point with the given Z component passes the
// selector. The boundary z == 0 is assigned to Left.
func (s Side) Contains(z float32) bool {
	switch s {
	case SideLeft:
		return z >= 0
	case SideRight:
		return z < 0
	default:
		return true
	}
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Both"
	}
}

// ParseSide maps a label back to a Side. Unknown labels fall back to Both
// so a corrupt persisted state never blocks startup.
func ParseSide(label string) Side {
	switch label {
	case "Left":
		return SideLeft
	case "Right":
		return SideRight
	default:
		return SideBoth
	}
}
