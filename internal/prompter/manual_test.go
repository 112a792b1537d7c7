package prompter

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-prompter/internal/core"
)

func newTestOverride() (*ManualOverride, *ManualScheduler) {
	sched := NewManualScheduler()
	return NewManualOverride(PresentationManualConfig(), sched, nil), sched
}

func TestMagnificationDisablesAutoResize(t *testing.T) {
	m, _ := newTestOverride()
	st := core.DefaultSettings()
	st.AutoResize = true

	m.Handle(core.MagnifyGesture(core.GestureBegin, 1.0), &st, 100, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 1.2), &st, 100, false)

	if st.AutoResize {
		t.Error("auto-resize still enabled after manual magnification")
	}
	if m.OriginalSize() != 100 {
		t.Errorf("OriginalSize() = %v, want 100", m.OriginalSize())
	}
}

func TestMagnificationSequence(t *testing.T) {
	// The spec sequence: cumulative scale 1.0 -> 1.5 -> 1.5 starting at
	// size 100 commits 150 and turns auto-resize off.
	m, _ := newTestOverride()
	st := core.DefaultSettings()
	st.AutoResize = true

	m.Handle(core.MagnifyGesture(core.GestureBegin, 1.0), &st, 100, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 1.0), &st, 100, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 1.5), &st, 100, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 1.5), &st, 100, false)
	res := m.Handle(core.Gesture{Phase: core.GestureEnded}, &st, 100, false)

	if !res.Committed {
		t.Error("gesture end did not commit")
	}
	if st.AutoResize {
		t.Error("auto-resize still enabled")
	}
	if st.BaseFontSize != 150 {
		t.Errorf("committed size = %v, want 150", st.BaseFontSize)
	}
	if st.ManualOverrideSize != 150 {
		t.Errorf("override size = %v, want 150", st.ManualOverrideSize)
	}
}

func TestMagnificationClampsToCeiling(t *testing.T) {
	tests := []struct {
		name string
		cfg  ManualConfig
		want float64
	}{
		{"presentation ceiling", PresentationManualConfig(), 500},
		{"editor ceiling", EditorManualConfig(), 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sched := NewManualScheduler()
			m := NewManualOverride(tc.cfg, sched, nil)
			st := core.DefaultSettings()

			m.Handle(core.MagnifyGesture(core.GestureBegin, 1.0), &st, 400, false)
			m.Handle(core.MagnifyGesture(core.GestureChanged, 10.0), &st, 400, false)
			m.Handle(core.Gesture{Phase: core.GestureEnded}, &st, 400, false)

			if st.BaseFontSize != tc.want {
				t.Errorf("committed size = %v, want %v", st.BaseFontSize, tc.want)
			}
		})
	}
}

func TestMagnificationClampsToFloor(t *testing.T) {
	m, _ := newTestOverride()
	st := core.DefaultSettings()

	m.Handle(core.MagnifyGesture(core.GestureBegin, 1.0), &st, 100, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 0.01), &st, 100, false)
	m.Handle(core.Gesture{Phase: core.GestureEnded}, &st, 100, false)

	if st.BaseFontSize != 20 {
		t.Errorf("committed size = %v, want floor 20", st.BaseFontSize)
	}
}

func TestDragAnchorsOnFirstSample(t *testing.T) {
	m, _ := newTestOverride()
	st := core.DefaultSettings()
	st.ScrollingEnabled = false

	m.Handle(core.DragGesture(core.GestureBegin, 0, 0), &st, 100, false)
	m.Handle(core.DragGesture(core.GestureChanged, 10, 5), &st, 100, false)
	m.Handle(core.DragGesture(core.GestureChanged, 30, -5), &st, 100, false)

	got := m.Position()
	if got.X != 30 || got.Y != -5 {
		t.Errorf("Position() = %+v, want (30, -5)", got)
	}

	// A second gesture anchors at the committed position.
	m.Handle(core.Gesture{Phase: core.GestureEnded}, &st, 100, false)
	m.Handle(core.DragGesture(core.GestureBegin, 0, 0), &st, 100, false)
	m.Handle(core.DragGesture(core.GestureChanged, 1, 1), &st, 100, false)

	got = m.Position()
	if got.X != 31 || got.Y != -4 {
		t.Errorf("Position() after second gesture = %+v, want (31, -4)", got)
	}
}

func TestDragIgnoredWhileScrolling(t *testing.T) {
	m, _ := newTestOverride()
	st := core.DefaultSettings()
	st.ScrollingEnabled = true

	m.Handle(core.DragGesture(core.GestureBegin, 0, 0), &st, 100, true)
	res := m.Handle(core.DragGesture(core.GestureChanged, 10, 10), &st, 100, true)

	if res.PositionChanged {
		t.Error("drag applied while scrolling")
	}
	if p := m.Position(); p.X != 0 || p.Y != 0 {
		t.Errorf("Position() = %+v, want origin", p)
	}
}

func TestIndicatorHideIsDeferred(t *testing.T) {
	m, sched := newTestOverride()
	st := core.DefaultSettings()

	m.Handle(core.MagnifyGesture(core.GestureBegin, 1.0), &st, 100, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 1.3), &st, 100, false)
	if !m.IndicatorVisible() {
		t.Fatal("indicator not shown during resize")
	}

	m.Handle(core.Gesture{Phase: core.GestureEnded}, &st, 100, false)
	if !m.IndicatorVisible() {
		t.Error("indicator hidden immediately on gesture end")
	}

	// Hidden only after the 0.5s settle + 0.5s fade.
	sched.Advance(900 * time.Millisecond)
	if !m.IndicatorVisible() {
		t.Error("indicator hidden before the settle+fade delay")
	}
	sched.Advance(200 * time.Millisecond)
	if m.IndicatorVisible() {
		t.Error("indicator still visible after the hide delay")
	}
}

func TestNewGestureCancelsPendingHide(t *testing.T) {
	m, sched := newTestOverride()
	st := core.DefaultSettings()

	m.Handle(core.MagnifyGesture(core.GestureBegin, 1.0), &st, 100, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 1.3), &st, 100, false)
	m.Handle(core.Gesture{Phase: core.GestureEnded}, &st, 100, false)

	// A new resize before the hide fires keeps the indicator up.
	sched.Advance(500 * time.Millisecond)
	m.Handle(core.MagnifyGesture(core.GestureBegin, 1.0), &st, 130, false)
	m.Handle(core.MagnifyGesture(core.GestureChanged, 1.1), &st, 130, false)

	sched.Advance(2 * time.Second)
	if !m.IndicatorVisible() {
		t.Error("indicator hidden while a gesture is active")
	}
}
