// Package tui provides the Bubble Tea surface for the runner.
// It handles the terminal UI loop, input mapping and frame rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedMillis returns the wall time between two ticks in milliseconds.
// The first tick (zero prev) reports no elapsed time.
func elapsedMillis(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}
