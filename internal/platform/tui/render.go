package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-prompter/internal/core"
	"github.com/vovakirdan/tui-prompter/internal/prompter"
)

// A terminal cell maps to a fixed number of layout units. Cells are
// roughly twice as tall as wide, which these ratios reflect; the same
// mapping is used for the viewport handed to the solver and for
// positioning, so layout decisions and rendering agree.
const (
	unitsPerCol = 8.0
	unitsPerRow = 16.0
)

var (
	beltStyle      = lipgloss.NewStyle().Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// viewportUnits converts a terminal size in cells to layout units.
func viewportUnits(cols, rows int) core.Size {
	return core.NewSize(float64(cols)*unitsPerCol, float64(rows)*unitsPerRow)
}

// classifyOrientation maps a terminal shape to the portrait/landscape
// classification the session consumes. Terminal cells are about twice
// as tall as wide, so a window is landscape once its column count is
// clearly more than twice its row count.
func classifyOrientation(cols, rows int) core.Orientation {
	if rows <= 0 {
		return core.OrientationPortrait
	}
	if float64(cols) > 2.2*float64(rows) {
		return core.OrientationLandscape
	}
	return core.OrientationPortrait
}

// flattenScript collapses a multi-line script into the single belt line.
func flattenScript(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ComposePresentation draws the presentation surface for the given
// snapshot into the screen buffer. The buffer is cleared first.
func ComposePresentation(snap prompter.Snapshot, s *core.Screen) {
	s.Clear()

	switch snap.Phase {
	case core.PhaseCountingDown:
		composeCountdown(snap, s)
	case core.PhaseScrolling:
		composeBelt(snap, s)
	case core.PhaseStatic:
		composeStatic(snap, s)
	case core.PhaseIdle:
		s.DrawTextCentered(s.Height()/2, "press ctrl+f to present")
	}

	if snap.ShowIndicator {
		composeIndicator(snap, s)
	}
}

// composeBelt draws the two text copies of the seamless belt. The
// session's offset and belt width are in layout units; at the current
// size one rune advances 0.6 x size units, which fixes the unit-to-cell
// conversion so the seam lands where the engine says it does.
func composeBelt(snap prompter.Snapshot, s *core.Screen) {
	text := flattenScript(snap.Text)
	if text == "" {
		return
	}

	adv := snap.EffectiveSize * 0.6
	if adv <= 0 {
		adv = 1
	}

	offCols := int(math.Round(snap.Offset / adv))
	beltCols := int(math.Round(snap.TextWidth / adv))
	centerX := s.Width() / 2
	y := s.Height() / 2

	s.DrawText(centerX+offCols, y, text)
	if beltCols > 0 {
		s.DrawText(centerX+offCols+beltCols, y, text)
	}
}

// composeStatic draws the wrapped script block, shifted by the manual
// drag offset.
func composeStatic(snap prompter.Snapshot, s *core.Screen) {
	const padCols = 2

	maxCols := s.Width() - 2*padCols
	if maxCols < 1 {
		maxCols = 1
	}

	lines := wrapCells(snap.Text, maxCols)
	if len(lines) == 0 {
		return
	}

	dx := int(math.Round(snap.Position.X / unitsPerCol))
	dy := int(math.Round(snap.Position.Y / unitsPerRow))

	top := (s.Height()-len(lines))/2 + dy
	for i, line := range lines {
		x := (s.Width()-len([]rune(line)))/2 + dx
		s.DrawText(x, top+i, line)
	}
}

// composeCountdown draws the pre-roll number in a centered box.
func composeCountdown(snap prompter.Snapshot, s *core.Screen) {
	const boxW, boxH = 11, 5

	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+boxH/2, fmt.Sprintf("%d", snap.Remaining))
	s.DrawTextCentered(box.Bottom()+1, "starting...")
}

// composeIndicator overlays the transient size readout in the top-right
// corner. On a window narrower than the label the anchor clamps to the
// left edge so the leading digits stay visible.
func composeIndicator(snap prompter.Snapshot, s *core.Screen) {
	label := fmt.Sprintf(" %.0f pt ", snap.IndicatorSize)
	x := core.Clamp(s.Width()-len(label)-1, 0, s.Width()-1)
	s.DrawText(x, 0, label)
}

// wrapCells greedily word-wraps text to the given column budget,
// mirroring the static fit policy: words are never broken, an oversized
// word overflows its line.
func wrapCells(text string, maxCols int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len([]rune(current))+1+len([]rune(w)) <= maxCols {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}

// styleRows applies presentation styles row by row. The belt and static
// rows are bold; chrome rows keep their accent colors.
func styleRows(snap prompter.Snapshot, s *core.Screen) string {
	rows := strings.Split(s.String(), "\n")
	for i, row := range rows {
		switch {
		case snap.ShowIndicator && i == 0:
			rows[i] = indicatorStyle.Render(row)
		case snap.Phase == core.PhaseCountingDown:
			rows[i] = countdownStyle.Render(row)
		case snap.Phase == core.PhaseIdle:
			rows[i] = dimStyle.Render(row)
		default:
			rows[i] = beltStyle.Render(row)
		}
	}
	return strings.Join(rows, "\n")
}
