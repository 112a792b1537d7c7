package measure

import (
	"github.com/vovakirdan/tui-prompter/internal/core"
)

// CellMeasurer approximates text extents with uniform glyph advances,
// matching how the terminal shell ultimately renders: every rune
// advances by AdvanceRatio x font size, every line occupies
// LineHeight x font size. Weight does not affect cell metrics.
type CellMeasurer struct {
	AdvanceRatio float64 // horizontal advance per rune, as a fraction of size
	LineHeight   float64 // line height, as a fraction of size
}

// NewCellMeasurer returns a measurer with the standard ratios.
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{
		AdvanceRatio: 0.6,
		LineHeight:   1.2,
	}
}

// Measure implements Oracle.
func (m *CellMeasurer) Measure(text string, size float64, _ Weight, box core.Size, wrap bool) core.Size {
	advance := size * m.AdvanceRatio
	lineH := size * m.LineHeight

	if !wrap || box.W >= Unbounded {
		return core.Size{
			W: float64(len([]rune(text))) * advance,
			H: lineH,
		}
	}

	widths := wrapWidths(text, box.W, advance, func(word string) float64 {
		return float64(len([]rune(word))) * advance
	})
	if len(widths) == 0 {
		return core.Size{H: lineH}
	}

	maxW := 0.0
	for _, w := range widths {
		if w > maxW {
			maxW = w
		}
	}
	return core.Size{W: maxW, H: float64(len(widths)) * lineH}
}
