package core

// Phase represents the presentation lifecycle state. Exactly one phase
// is active at a time.
type Phase int

const (
	PhaseIdle         Phase = iota // not presenting
	PhaseCountingDown              // pre-roll countdown running
	PhaseScrolling                 // belt scroll running
	PhaseStatic                    // static wrapped layout shown
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountingDown:
		return "counting-down"
	case PhaseScrolling:
		return "scrolling"
	case PhaseStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Presenting reports whether the phase is one of the on-screen states.
func (p Phase) Presenting() bool {
	return p != PhaseIdle
}

// Orientation classifies the viewport shape. The presentation surface
// is landscape; the editing surface is portrait.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationLandscape
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == OrientationLandscape {
		return "landscape"
	}
	return "portrait"
}
