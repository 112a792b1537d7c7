package prompter

import (
	"time"

	"github.com/vovakirdan/tui-prompter/internal/core"
	"github.com/vovakirdan/tui-prompter/internal/measure"
)

// Snapshot is the read model the rendering layer consumes. It is a
// value copy; the renderer never touches session internals.
type Snapshot struct {
	Phase         core.Phase
	Remaining     int
	Text          string
	EffectiveSize float64
	Offset        float64
	TextWidth     float64
	ScrollRunning bool
	Position      core.Point
	ShowIndicator bool
	IndicatorSize float64
}

// SessionConfig bundles the solver and override bounds for one surface.
type SessionConfig struct {
	Solver SolverConfig
	Manual ManualConfig
}

// PresentationSessionConfig returns the configuration for the
// full-screen presentation surface.
func PresentationSessionConfig() SessionConfig {
	return SessionConfig{
		Solver: PresentationSolverConfig(),
		Manual: PresentationManualConfig(),
	}
}

// EditorSessionConfig returns the configuration for the inline editor,
// which caps manual and solved sizes at the smaller ceiling.
func EditorSessionConfig() SessionConfig {
	return SessionConfig{
		Solver: EditorSolverConfig(),
		Manual: EditorManualConfig(),
	}
}

// Session is the presentation state machine. It owns the settings, the
// current phase, the countdown, the scroll engine and the manual
// override layer, and coordinates them in response to external events.
// All methods must be called from one goroutine; the scheduler fires
// callbacks synchronously on that same goroutine.
type Session struct {
	cfg    SessionConfig
	sched  Scheduler
	solver *Solver
	scroll *ScrollEngine
	manual *ManualOverride

	settings core.Settings
	viewport core.Size

	phase     core.Phase
	remaining int

	countdownHandle Handle
	countdownGen    int // invalidates countdown ticks after phase exit

	effectiveSize float64

	subs []func()
}

// NewSession creates an idle session over the given oracle and scheduler.
func NewSession(oracle measure.Oracle, sched Scheduler, cfg SessionConfig) *Session {
	s := &Session{
		cfg:      cfg,
		sched:    sched,
		solver:   NewSolver(oracle, cfg.Solver),
		scroll:   NewScrollEngine(sched),
		settings: core.DefaultSettings(),
		phase:    core.PhaseIdle,
	}
	s.manual = NewManualOverride(cfg.Manual, sched, s.notify)
	s.effectiveSize = s.settings.BaseFontSize
	return s
}

// Subscribe registers a change callback fired after any externally
// visible state change. Replaces ambient observer coupling: the
// platform re-renders exactly when told to.
func (s *Session) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Session) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

// Settings returns a copy of the current settings.
func (s *Session) Settings() core.Settings {
	return s.settings
}

// Phase returns the current presentation phase.
func (s *Session) Phase() core.Phase {
	return s.phase
}

// Snapshot returns the current read model for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:         s.phase,
		Remaining:     s.remaining,
		Text:          s.settings.Text,
		EffectiveSize: s.effectiveSize,
		Offset:        s.scroll.Offset(),
		TextWidth:     s.scroll.TextWidth(),
		ScrollRunning: s.scroll.Running(),
		Position:      s.manual.Position(),
		ShowIndicator: s.manual.IndicatorVisible(),
		IndicatorSize: s.manual.WorkingSize(),
	}
}

// SetText replaces the script text. While presenting with auto-resize
// on, the size is re-solved immediately; the phase never changes. A
// running belt recomputes its width so the seam tracks the new content.
func (s *Session) SetText(text string) {
	s.settings.Text = text
	s.refreshLayout()
	s.notify()
}

// SetViewport records the current viewport and re-solves if presenting.
// The viewport is not stored beyond what layout needs.
func (s *Session) SetViewport(size core.Size) {
	if size == s.viewport {
		return
	}
	s.viewport = size
	s.refreshLayout()
	s.notify()
}

// refreshLayout re-solves the size (if auto) and keeps the belt seam
// consistent after a content or viewport change.
func (s *Session) refreshLayout() {
	if s.phase.Presenting() && s.settings.AutoResize {
		s.resolveSize()
	}
	if s.scroll.Running() {
		s.scroll.SetContent(s.settings.Text, s.effectiveSize, s.settings.Spacing)
		s.scroll.UpdateTextWidth()
	}
}

// resolveSize runs the solver and adopts the result as the effective
// size immediately, with no animation. The solved size is derived
// state: it never writes back into the settings, so the configured
// base size survives auto-resize runs.
func (s *Session) resolveSize() {
	scrolling := s.settings.ScrollingEnabled
	s.effectiveSize = s.solver.Solve(s.settings.Text, s.viewport, scrolling)
}

// EffectiveSize returns the size currently in force.
func (s *Session) EffectiveSize() float64 {
	return s.effectiveSize
}

// HandleOrientation funnels orientation flips into the same entry and
// exit paths as the explicit full-screen controls.
func (s *Session) HandleOrientation(o core.Orientation) {
	switch o {
	case core.OrientationLandscape:
		if !s.phase.Presenting() {
			s.EnterPresentation()
		}
	case core.OrientationPortrait:
		if s.phase.Presenting() {
			s.LeavePresentation()
		}
	}
}

// EnterPresentation starts the presentation lifecycle: countdown first
// when enabled, otherwise straight to scrolling or static content.
// A no-op while already presenting.
func (s *Session) EnterPresentation() {
	if s.phase.Presenting() {
		return
	}

	if s.settings.AutoResize {
		s.resolveSize()
	} else if s.settings.ManualOverrideSize > 0 {
		s.effectiveSize = s.settings.ManualOverrideSize
	} else {
		s.effectiveSize = s.settings.BaseFontSize
	}

	if s.settings.CountdownEnabled && s.settings.CountdownSeconds > 0 {
		s.beginCountdown()
	} else {
		s.enterContent()
	}
	s.notify()
}

// LeavePresentation cancels any countdown, stops the belt and returns
// to idle. Safe to call in any phase.
func (s *Session) LeavePresentation() {
	if !s.phase.Presenting() {
		return
	}

	s.cancelCountdown()
	s.scroll.Stop()
	s.remaining = 0
	s.manual.ResetPosition()
	s.phase = core.PhaseIdle
	s.notify()
}

// beginCountdown enters CountingDown and starts the 1 Hz tick.
func (s *Session) beginCountdown() {
	s.phase = core.PhaseCountingDown
	s.remaining = s.settings.CountdownSeconds

	s.countdownGen++
	gen := s.countdownGen
	s.countdownHandle = s.sched.Schedule(time.Second, true, func() {
		s.countdownTick(gen)
	})
}

// countdownTick decrements the pre-roll. A tick from a generation that
// has already been cancelled is a no-op, so a stale in-flight callback
// can never mutate a later phase.
func (s *Session) countdownTick(gen int) {
	if gen != s.countdownGen || s.phase != core.PhaseCountingDown {
		return
	}

	s.remaining--
	if s.remaining <= 0 {
		s.cancelCountdown()
		s.remaining = 0
		s.enterContent()
	}
	s.notify()
}

func (s *Session) cancelCountdown() {
	s.countdownGen++
	s.sched.Cancel(s.countdownHandle)
}

// enterContent picks Scrolling or Static from the settings and starts
// the belt when scrolling.
func (s *Session) enterContent() {
	if s.settings.ScrollingEnabled {
		s.phase = core.PhaseScrolling
		s.scroll.SetContent(s.settings.Text, s.effectiveSize, s.settings.Spacing)
		s.scroll.SetSpeed(s.settings.ScrollSpeed)
		s.scroll.StartSeamless(s.viewport.W)
	} else {
		s.phase = core.PhaseStatic
	}
}

// SetScrollingEnabled toggles belt mode. Disabling it mid-Scrolling
// stops the engine but does not change the phase; the next presentation
// entry recomputes which content phase to use. Re-enabling mid-phase
// likewise waits for the next entry.
func (s *Session) SetScrollingEnabled(enabled bool) {
	if s.settings.ScrollingEnabled == enabled {
		return
	}
	s.settings.ScrollingEnabled = enabled

	if !enabled && s.scroll.Running() {
		s.scroll.Stop()
	}
	if s.phase.Presenting() && s.settings.AutoResize {
		s.resolveSize()
	}
	s.notify()
}

// SetScrollSpeed updates the speed multiplier, applying live to a
// running belt.
func (s *Session) SetScrollSpeed(speed float64) {
	s.settings.ScrollSpeed = speed
	s.scroll.SetSpeed(speed)
	s.notify()
}

// SetSpacing changes the belt gap. The engine does not support a live
// spacing change, so a running belt is restarted to recompute its
// width and reset the seam.
func (s *Session) SetSpacing(sp core.Spacing) {
	if s.settings.Spacing == sp {
		return
	}
	s.settings.Spacing = sp

	if s.scroll.Running() {
		s.scroll.Stop()
		s.scroll.SetContent(s.settings.Text, s.effectiveSize, sp)
		s.scroll.StartSeamless(s.viewport.W)
	}
	s.notify()
}

// SetCountdown updates the pre-roll settings for the next entry.
func (s *Session) SetCountdown(enabled bool, seconds int) {
	s.settings.CountdownEnabled = enabled
	if seconds >= 0 {
		s.settings.CountdownSeconds = seconds
	}
	s.notify()
}

// SetAutoResize re-enables or disables automatic sizing. Re-enabling
// re-solves immediately when presenting.
func (s *Session) SetAutoResize(enabled bool) {
	if s.settings.AutoResize == enabled {
		return
	}
	s.settings.AutoResize = enabled
	s.refreshLayout()
	s.notify()
}

// ApplySettings replaces the settings wholesale, used when loading a
// saved configuration before presenting.
func (s *Session) ApplySettings(st core.Settings) {
	text := s.settings.Text
	s.settings = st
	if st.Text == "" {
		s.settings.Text = text
	}
	s.effectiveSize = s.settings.BaseFontSize
	s.refreshLayout()
	s.notify()
}

// HandleGesture feeds one gesture sample through the manual override
// layer and propagates its effects: a size change applies immediately,
// a commit updates the belt width so the seam matches the new size.
func (s *Session) HandleGesture(g core.Gesture) {
	res := s.manual.Handle(g, &s.settings, s.effectiveSize, s.scroll.Running())

	if res.SizeChanged {
		s.effectiveSize = s.manual.WorkingSize()
	}
	if res.Committed {
		s.effectiveSize = s.manual.WorkingSize()
		if s.scroll.Running() {
			s.scroll.SetContent(s.settings.Text, s.effectiveSize, s.settings.Spacing)
			s.scroll.UpdateTextWidth()
		}
	}
	s.notify()
}
