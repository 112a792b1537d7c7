package prompter

import (
	"time"

	"github.com/vovakirdan/tui-prompter/internal/core"
)

const (
	// TickInterval is the scroll cadence, roughly 60 Hz.
	TickInterval = 16 * time.Millisecond

	// advancePerTick is the base offset decrement per tick, scaled by
	// the speed factor.
	advancePerTick = 2.0

	// glyphAdvanceRatio approximates the average glyph advance as a
	// fraction of font size. The belt width is computed from this
	// approximation, not from the measurement oracle: speed and seam
	// timing were tuned against it, and it is cheap enough to
	// recompute on every size change.
	glyphAdvanceRatio = 0.6

	spacingTightFactor = 1.0
	spacingWideFactor  = 8.0
)

// beltSpacing returns the gap appended after the text for the given
// spacing mode.
func beltSpacing(sp core.Spacing, size float64) float64 {
	if sp == core.SpacingWide {
		return size * spacingWideFactor
	}
	return size * spacingTightFactor
}

// ScrollEngine owns the horizontal scroll offset and the approximate
// pixel width of the text belt. Each tick moves the offset left; when a
// full belt width has passed, the offset wraps by adding the width back
// (not by resetting to zero), so sub-width overshoot is preserved and
// the seam never jumps.
//
// The engine owns only offset and width. The renderer composes two
// copies of the text at centerX+offset and centerX+offset+width to
// produce the infinite belt.
type ScrollEngine struct {
	sched Scheduler

	text     string
	fontSize float64
	spacing  core.Spacing
	speed    float64

	offset        float64
	textWidth     float64
	viewportWidth float64
	running       bool

	handle Handle
	gen    int // invalidates in-flight ticks from a stopped run
}

// NewScrollEngine creates a stopped engine on the given scheduler.
func NewScrollEngine(sched Scheduler) *ScrollEngine {
	return &ScrollEngine{
		sched: sched,
		speed: 1.0,
	}
}

// SetContent updates the text, effective font size and spacing the belt
// is computed from. While running, callers must follow with
// UpdateTextWidth (or restart for a spacing change) to keep the seam
// consistent.
func (e *ScrollEngine) SetContent(text string, fontSize float64, spacing core.Spacing) {
	e.text = text
	e.fontSize = fontSize
	e.spacing = spacing
}

// SetSpeed sets the speed multiplier applied to each tick's decrement.
func (e *ScrollEngine) SetSpeed(speed float64) {
	e.speed = speed
}

// Offset returns the current belt offset.
func (e *ScrollEngine) Offset() float64 {
	return e.offset
}

// TextWidth returns the approximate belt width including spacing.
func (e *ScrollEngine) TextWidth() float64 {
	return e.textWidth
}

// Running reports whether the engine is ticking.
func (e *ScrollEngine) Running() bool {
	return e.running
}

// Start begins a simple linear scroll: the offset decreases every tick
// and never wraps. Kept for the non-seamless path; StartSeamless is the
// production variant.
func (e *ScrollEngine) Start(speed float64) {
	e.Stop()
	e.speed = speed
	e.textWidth = 0
	e.begin()
}

// StartSeamless begins the seamless belt scroll. The belt width is
// recomputed from the current content; the viewport width is retained
// for the renderer's center calculation.
func (e *ScrollEngine) StartSeamless(viewportWidth float64) {
	e.Stop()
	e.viewportWidth = viewportWidth
	e.UpdateTextWidth()
	e.begin()
}

func (e *ScrollEngine) begin() {
	e.offset = 0
	e.running = true
	e.gen++
	gen := e.gen
	e.handle = e.sched.Schedule(TickInterval, true, func() {
		e.tick(gen)
	})
}

// Stop halts the tick and resets the offset. Safe to call when already
// stopped.
func (e *ScrollEngine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.gen++
	e.sched.Cancel(e.handle)
	e.offset = 0
}

// UpdateTextWidth recomputes the belt width with the approximation
// formula. Call whenever the text or the effective font size changes so
// the loop seam stays aligned with what is rendered.
func (e *ScrollEngine) UpdateTextWidth() {
	runes := float64(len([]rune(e.text)))
	e.textWidth = runes*e.fontSize*glyphAdvanceRatio + beltSpacing(e.spacing, e.fontSize)
}

// tick advances the offset by one frame. A tick scheduled before Stop
// but delivered after it carries a stale generation and is a no-op.
func (e *ScrollEngine) tick(gen int) {
	if gen != e.gen || !e.running {
		return
	}

	e.offset -= e.speed * advancePerTick

	// Wrap by adding the width back rather than resetting to zero, so
	// any overshoot past the seam carries into the next cycle.
	if e.textWidth > 0 && e.offset <= -e.textWidth {
		e.offset += e.textWidth
	}
}
