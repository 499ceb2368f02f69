// Package tui provides the Bubble Tea integration for IE, Die!.
// It owns the terminal loop, maps mouse and keys onto the controller,
// draws the coordinator's output into a cell buffer and serves it over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
