// Package measure provides text measurement for the size solver.
// Measurement is an oracle: given a string, a font size and a constraint
// box, it answers how large the rendered text would be. Two
// implementations exist: FaceMeasurer uses real OpenType glyph metrics,
// CellMeasurer uses the monospace approximation the terminal shell
// renders with.
package measure

import (
	"github.com/vovakirdan/tui-prompter/internal/core"
)

// Unbounded marks a constraint axis as "no limit / no wrap on this axis".
const Unbounded = 1e9

// Weight selects the font weight for measurement.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

// Oracle answers bounding-box queries for rendered text.
//
// When wrap is false the text is measured as a single unbroken line and
// the box is ignored. When wrap is true the text is wrapped greedily
// against box.W; a box dimension of Unbounded means no constraint on
// that axis.
type Oracle interface {
	Measure(text string, size float64, weight Weight, box core.Size, wrap bool) core.Size
}
