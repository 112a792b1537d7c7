// Package tui provides the Bubble Tea integration for the prompter.
// It handles the terminal UI loop, input mapping, and drives the
// presentation session's scheduler from frame ticks.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the session clock by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
