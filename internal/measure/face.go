package measure

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-prompter/internal/core"
)

// FaceMeasurer measures text with real OpenType glyph metrics from the
// embedded Go fonts. It is the accurate oracle the solver runs against
// when the host can render proportional type.
type FaceMeasurer struct {
	regular *sfnt.Font
	bold    *sfnt.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size   float64
	weight Weight
}

// NewFaceMeasurer parses the embedded fonts and returns a ready measurer.
func NewFaceMeasurer() (*FaceMeasurer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("measure: cannot parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("measure: cannot parse bold font: %w", err)
	}
	return &FaceMeasurer{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// face returns a cached font.Face for the given size and weight.
// The solver probes the same handful of sizes repeatedly, so the cache
// stays small.
func (m *FaceMeasurer) face(size float64, weight Weight) (font.Face, error) {
	key := faceKey{size: size, weight: weight}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}

	src := m.regular
	if weight == WeightBold {
		src = m.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("measure: cannot create face at %.1f: %w", size, err)
	}
	m.faces[key] = f
	return f, nil
}

// Measure implements Oracle.
func (m *FaceMeasurer) Measure(text string, size float64, weight Weight, box core.Size, wrap bool) core.Size {
	f, err := m.face(size, weight)
	if err != nil {
		// Degrade to the uniform-advance approximation rather than fail.
		return NewCellMeasurer().Measure(text, size, weight, box, wrap)
	}

	lineH := fixedToFloat(f.Metrics().Height)

	if !wrap || box.W >= Unbounded {
		return core.Size{
			W: fixedToFloat(font.MeasureString(f, text)),
			H: lineH,
		}
	}

	space := fixedToFloat(font.MeasureString(f, " "))
	widths := wrapWidths(text, box.W, space, func(word string) float64 {
		return fixedToFloat(font.MeasureString(f, word))
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

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
