package prompter

import (
	"time"

	"github.com/vovakirdan/tui-prompter/internal/core"
)

// ManualConfig parameterizes the manual override layer. MaxSize is the
// clamp ceiling for pinch resizing; the presentation surface allows much
// larger type than the inline editor, so the two contexts construct the
// layer with different ceilings.
type ManualConfig struct {
	MinSize         float64
	MaxSize         float64
	IndicatorSettle time.Duration // delay before the size indicator starts fading
	IndicatorFade   time.Duration // fade duration; the indicator hides after settle+fade
}

// PresentationManualConfig returns the override bounds for the full
// presentation surface.
func PresentationManualConfig() ManualConfig {
	return ManualConfig{
		MinSize:         20,
		MaxSize:         500,
		IndicatorSettle: 500 * time.Millisecond,
		IndicatorFade:   500 * time.Millisecond,
	}
}

// EditorManualConfig returns the override bounds for the inline editor.
func EditorManualConfig() ManualConfig {
	cfg := PresentationManualConfig()
	cfg.MaxSize = 300
	return cfg
}

// ManualResult reports what a gesture sample changed.
type ManualResult struct {
	SizeChanged     bool
	PositionChanged bool
	Committed       bool // gesture ended and the working size was committed
}

// ManualOverride consumes the two-phase gesture stream. The first
// magnification of a gesture permanently disables auto-resize (until a
// caller re-enables it) and captures the size it replaced. Drag moves
// the static text anchor and is ignored while scrolling is enabled,
// since position is meaningless in belt mode.
type ManualOverride struct {
	cfg      ManualConfig
	sched    Scheduler
	onChange func()

	// transient per-gesture state
	active      bool
	workingSize float64
	lastMag     float64
	dragging    bool
	dragAnchor  core.Point

	originalSize float64 // effective size when auto-resize was first overridden
	position     core.Point

	indicatorVisible bool
	hideHandle       Handle
	hidePending      bool
}

// NewManualOverride creates the override layer. onChange fires whenever
// externally visible state (indicator visibility) changes outside a
// gesture; it may be nil.
func NewManualOverride(cfg ManualConfig, sched Scheduler, onChange func()) *ManualOverride {
	return &ManualOverride{
		cfg:      cfg,
		sched:    sched,
		onChange: onChange,
	}
}

// Position returns the manually dragged text anchor offset.
func (m *ManualOverride) Position() core.Point {
	return m.position
}

// IndicatorVisible reports whether the transient size indicator shows.
func (m *ManualOverride) IndicatorVisible() bool {
	return m.indicatorVisible
}

// OriginalSize returns the effective size captured when auto-resize was
// first overridden, as a baseline for a future re-enable.
func (m *ManualOverride) OriginalSize() float64 {
	return m.originalSize
}

// ResetPosition clears the drag offset, used when leaving presentation.
func (m *ManualOverride) ResetPosition() {
	m.position = core.Point{}
}

// Handle consumes one gesture sample. st is mutated in place: auto-resize
// may be disabled, and on gesture end the working size is committed to
// BaseFontSize and ManualOverrideSize. currentSize is the effective size
// shown when the gesture began; scrolling gates drag handling.
func (m *ManualOverride) Handle(g core.Gesture, st *core.Settings, currentSize float64, scrolling bool) ManualResult {
	switch g.Phase {
	case core.GestureBegin:
		m.begin(currentSize)
		return ManualResult{}

	case core.GestureChanged:
		if !m.active {
			// Defensive: a changed sample without begin starts a session.
			m.begin(currentSize)
		}
		var res ManualResult
		if g.HasMagnification {
			res.SizeChanged = m.updateSize(g.Magnification, st)
		}
		if g.HasDrag && !scrolling {
			res.PositionChanged = m.updateDrag(g.Drag)
		}
		return res

	case core.GestureEnded:
		return m.end(st)
	}

	return ManualResult{}
}

func (m *ManualOverride) begin(currentSize float64) {
	m.active = true
	m.workingSize = currentSize
	m.lastMag = 1.0
	m.dragging = false
}

// updateSize applies one magnification sample. Scaling is relative: the
// working size grows by the ratio of this sample's cumulative scale to
// the previous one, so pausing mid-pinch does not re-apply the whole
// factor.
func (m *ManualOverride) updateSize(mag float64, st *core.Settings) bool {
	if mag <= 0 || m.lastMag <= 0 {
		return false
	}

	if st.AutoResize {
		st.AutoResize = false
		m.originalSize = m.workingSize
	}

	next := m.workingSize * (mag / m.lastMag)
	m.lastMag = mag
	next = core.ClampF(next, m.cfg.MinSize, m.cfg.MaxSize)
	if next == m.workingSize {
		m.showIndicator()
		return false
	}

	m.workingSize = next
	m.showIndicator()
	return true
}

// updateDrag applies one drag sample. The first sample of a gesture
// captures the anchor; later samples reposition relative to it using the
// cumulative translation.
func (m *ManualOverride) updateDrag(cumulative core.Point) bool {
	if !m.dragging {
		m.dragging = true
		m.dragAnchor = m.position
	}
	next := m.dragAnchor.Add(cumulative)
	if next == m.position {
		return false
	}
	m.position = next
	return true
}

// end commits the working size and schedules the indicator hide after
// the settle+fade delay rather than hiding immediately.
func (m *ManualOverride) end(st *core.Settings) ManualResult {
	if !m.active {
		return ManualResult{}
	}
	m.active = false
	m.dragging = false

	st.BaseFontSize = m.workingSize
	st.ManualOverrideSize = m.workingSize

	if m.indicatorVisible {
		m.scheduleHide()
	}
	return ManualResult{Committed: true}
}

// WorkingSize returns the size the gesture is currently showing, or the
// last committed size when no gesture is active.
func (m *ManualOverride) WorkingSize() float64 {
	return m.workingSize
}

func (m *ManualOverride) showIndicator() {
	m.indicatorVisible = true
	if m.hidePending {
		m.sched.Cancel(m.hideHandle)
		m.hidePending = false
	}
}

func (m *ManualOverride) scheduleHide() {
	if m.hidePending {
		m.sched.Cancel(m.hideHandle)
	}
	m.hidePending = true
	delay := m.cfg.IndicatorSettle + m.cfg.IndicatorFade
	m.hideHandle = m.sched.Schedule(delay, false, func() {
		m.hidePending = false
		m.indicatorVisible = false
		if m.onChange != nil {
			m.onChange()
		}
	})
}
