package measure

import (
	"testing"

	"github.com/vovakirdan/tui-prompter/internal/core"
)

func TestFaceMeasurerBasics(t *testing.T) {
	m, err := NewFaceMeasurer()
	if err != nil {
		t.Fatalf("NewFaceMeasurer() failed: %v", err)
	}

	box := core.Size{W: Unbounded, H: Unbounded}
	got := m.Measure("Hello, world", 24, WeightRegular, box, false)

	if got.W <= 0 || got.H <= 0 {
		t.Fatalf("Measure() = %+v, want positive extents", got)
	}

	// A longer string must measure wider at the same size.
	longer := m.Measure("Hello, world and then some", 24, WeightRegular, box, false)
	if longer.W <= got.W {
		t.Errorf("longer text width %v not greater than %v", longer.W, got.W)
	}
}

func TestFaceMeasurerMonotonicInSize(t *testing.T) {
	m, err := NewFaceMeasurer()
	if err != nil {
		t.Fatalf("NewFaceMeasurer() failed: %v", err)
	}

	box := core.Size{W: Unbounded, H: Unbounded}
	prev := m.Measure("monotone", 12, WeightRegular, box, false)
	for size := 24.0; size <= 96; size += 12 {
		got := m.Measure("monotone", size, WeightRegular, box, false)
		if got.W <= prev.W || got.H < prev.H {
			t.Fatalf("measure did not grow from %+v to %+v at size %v", prev, got, size)
		}
		prev = got
	}
}

func TestFaceMeasurerWrap(t *testing.T) {
	m, err := NewFaceMeasurer()
	if err != nil {
		t.Fatalf("NewFaceMeasurer() failed: %v", err)
	}

	text := "several words that will certainly not fit on one narrow line"
	unbounded := core.Size{W: Unbounded, H: Unbounded}

	line := m.Measure(text, 24, WeightRegular, unbounded, false)
	wrapped := m.Measure(text, 24, WeightRegular, core.Size{W: line.W / 4, H: Unbounded}, true)

	if wrapped.H <= line.H {
		t.Errorf("wrapped height %v not greater than single-line %v", wrapped.H, line.H)
	}
	if wrapped.W >= line.W {
		t.Errorf("wrapped width %v not smaller than single-line %v", wrapped.W, line.W)
	}
}

func TestFaceMeasurerDeterministic(t *testing.T) {
	m, err := NewFaceMeasurer()
	if err != nil {
		t.Fatalf("NewFaceMeasurer() failed: %v", err)
	}

	box := core.Size{W: Unbounded, H: Unbounded}
	first := m.Measure("same inputs", 33.5, WeightBold, box, false)
	for i := 0; i < 5; i++ {
		if got := m.Measure("same inputs", 33.5, WeightBold, box, false); got != first {
			t.Fatalf("Measure() = %+v on run %d, want %+v", got, i, first)
		}
	}
}
