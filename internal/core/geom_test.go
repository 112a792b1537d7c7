package core

import "testing"

func TestSizeInset(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		amount float64
		want   Size
	}{
		{"normal", NewSize(800, 600), 20, NewSize(760, 560)},
		{"to zero", NewSize(40, 40), 20, NewSize(0, 0)},
		{"negative result", NewSize(30, 10), 20, NewSize(-10, -30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.size.Inset(tc.amount); got != tc.want {
				t.Errorf("Inset() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSizePositive(t *testing.T) {
	if !NewSize(1, 1).Positive() {
		t.Error("1x1 should be positive")
	}
	if NewSize(0, 10).Positive() {
		t.Error("zero width should not be positive")
	}
	if NewSize(10, -1).Positive() {
		t.Error("negative height should not be positive")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		want          float64
	}{
		{"below", 5, 20, 500, 20},
		{"inside", 100, 20, 500, 100},
		{"above", 900, 20, 500, 500},
		{"at min", 20, 20, 500, 20},
		{"at max", 500, 20, 500, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.want {
				t.Errorf("ClampF(%v) = %v, want %v", tc.val, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		want          int
	}{
		{"below", -3, 0, 79, 0},
		{"inside", 40, 0, 79, 40},
		{"above", 120, 0, 79, 79},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
				t.Errorf("Clamp(%v) = %v, want %v", tc.val, got, tc.want)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{X: 3, Y: -2}.Add(Point{X: -1, Y: 5})
	if got.X != 2 || got.Y != 3 {
		t.Errorf("Add() = %+v, want (2, 3)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(6, 3) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(2, 8) {
		t.Error("bottom edge is exclusive")
	}
}
