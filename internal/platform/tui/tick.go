// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It maps keys and clicks to actions, drives the fixed-rate tick loop and
// forwards step events to audio and run storage.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one interval from now.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
