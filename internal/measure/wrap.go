package measure

import "strings"

// wrapWidths performs greedy word wrapping and returns the advance width
// of each resulting line. A single word wider than maxWidth occupies a
// line of its own and overflows; it is never broken mid-word.
func wrapWidths(text string, maxWidth, spaceWidth float64, measure func(string) float64) []float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var widths []float64
	line := 0.0
	started := false

	for _, w := range words {
		ww := measure(w)
		if !started {
			line = ww
			started = true
			continue
		}
		if line+spaceWidth+ww <= maxWidth {
			line += spaceWidth + ww
			continue
		}
		widths = append(widths, line)
		line = ww
	}
	widths = append(widths, line)
	return widths
}
