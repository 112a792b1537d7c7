package core

// Spacing controls the gap inserted between the two text copies of the
// scroll belt. The gap scales with the current font size.
type Spacing int

const (
	SpacingTight Spacing = iota // gap = 1.0 x font size
	SpacingWide                 // gap = 8.0 x font size
)

// String returns a human-readable name for the spacing mode.
func (sp Spacing) String() string {
	switch sp {
	case SpacingTight:
		return "tight"
	case SpacingWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Settings holds the user-visible presentation settings. It is owned by
// the session and mutated only on the event thread.
type Settings struct {
	Text               string
	BaseFontSize       float64
	AutoResize         bool
	ManualOverrideSize float64
	ScrollingEnabled   bool
	ScrollSpeed        float64 // speed multiplier: 0.5, 1.0 or 2.0
	Spacing            Spacing
	CountdownSeconds   int
	CountdownEnabled   bool
}

// DefaultSettings returns settings matching a fresh install.
func DefaultSettings() Settings {
	return Settings{
		BaseFontSize:     50,
		AutoResize:       true,
		ScrollingEnabled: true,
		ScrollSpeed:      1.0,
		Spacing:          SpacingTight,
		CountdownSeconds: 5,
		CountdownEnabled: true,
	}
}
