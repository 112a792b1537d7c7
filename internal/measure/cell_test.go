package measure

import (
	"testing"

	"github.com/vovakirdan/tui-prompter/internal/core"
)

func TestCellMeasureSingleLine(t *testing.T) {
	m := NewCellMeasurer()
	box := core.Size{W: Unbounded, H: Unbounded}

	tests := []struct {
		name  string
		text  string
		size  float64
		wantW float64
		wantH float64
	}{
		{"simple", "hello", 100, 300, 120},
		{"empty", "", 100, 0, 120},
		{"unicode", "héllo", 10, 30, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Measure(tc.text, tc.size, WeightRegular, box, false)
			if got.W != tc.wantW || got.H != tc.wantH {
				t.Errorf("Measure() = %+v, want {%v %v}", got, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestCellMeasureWrapped(t *testing.T) {
	m := NewCellMeasurer()

	// At size 10 each rune advances 6 units. "aaaa bbbb cccc" wraps into
	// three lines in a 30-unit box (each word is 24 units; word + space
	// + word would be 54).
	got := m.Measure("aaaa bbbb cccc", 10, WeightRegular, core.Size{W: 30, H: Unbounded}, true)
	if got.H != 36 {
		t.Errorf("wrapped height = %v, want 36 (three lines)", got.H)
	}
	if got.W != 24 {
		t.Errorf("wrapped width = %v, want 24 (widest line)", got.W)
	}
}

func TestCellMeasureWrapKeepsLongWordWhole(t *testing.T) {
	m := NewCellMeasurer()

	// A single word wider than the box overflows instead of breaking.
	got := m.Measure("unbreakable", 10, WeightRegular, core.Size{W: 20, H: Unbounded}, true)
	if got.H != 12 {
		t.Errorf("height = %v, want one line", got.H)
	}
	if got.W != 66 {
		t.Errorf("width = %v, want 66 (word left whole)", got.W)
	}
}

func TestCellMeasureMonotonicInSize(t *testing.T) {
	m := NewCellMeasurer()
	box := core.Size{W: Unbounded, H: Unbounded}

	prev := m.Measure("steady text", 10, WeightRegular, box, false)
	for size := 20.0; size <= 200; size += 10 {
		got := m.Measure("steady text", size, WeightRegular, box, false)
		if got.W < prev.W || got.H < prev.H {
			t.Fatalf("measure shrank from %+v to %+v at size %v", prev, got, size)
		}
		prev = got
	}
}
