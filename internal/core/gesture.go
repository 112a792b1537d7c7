package core

// GesturePhase marks the position of an event within a two-phase
// gesture stream.
type GesturePhase int

const (
	GestureBegin GesturePhase = iota
	GestureChanged
	GestureEnded
)

// String returns a human-readable name for the gesture phase.
func (g GesturePhase) String() string {
	switch g {
	case GestureBegin:
		return "begin"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Gesture is one sample from the gesture source. Magnification is the
// cumulative scale factor since gesture begin (1.0 = unchanged); Drag is
// the cumulative translation since gesture begin. Either component may
// be absent in a given sample.
type Gesture struct {
	Phase            GesturePhase
	Magnification    float64
	HasMagnification bool
	Drag             Point
	HasDrag          bool
}

// MagnifyGesture builds a magnification-only sample.
func MagnifyGesture(phase GesturePhase, scale float64) Gesture {
	return Gesture{Phase: phase, Magnification: scale, HasMagnification: true}
}

// DragGesture builds a drag-only sample.
func DragGesture(phase GesturePhase, dx, dy float64) Gesture {
	return Gesture{Phase: phase, Drag: Point{X: dx, Y: dy}, HasDrag: true}
}
