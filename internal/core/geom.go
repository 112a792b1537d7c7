// Package core provides fundamental types and utilities for the prompter
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep the presentation logic pure and testable.
package core

// Size represents a width/height pair in layout units.
type Size struct {
	W, H float64
}

// NewSize creates a size with the given dimensions.
func NewSize(w, h float64) Size {
	return Size{W: w, H: h}
}

// Inset returns the size shrunk by the given amount on every side.
// The result may have non-positive dimensions for small sizes.
func (s Size) Inset(amount float64) Size {
	return Size{W: s.W - 2*amount, H: s.H - 2*amount}
}

// Positive reports whether both dimensions are strictly positive.
func (s Size) Positive() bool {
	return s.W > 0 && s.H > 0
}

// Point represents a 2D position in layout units.
type Point struct {
	X, Y float64
}

// Add returns the point translated by the given offset.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect represents an axis-aligned box in screen cells, used by the
// cell-buffer renderer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
