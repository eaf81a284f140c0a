// Package tui runs the winter runner in a terminal: the Bubble Tea frame loop,
// key mapping, styled rendering, the leaderboard table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. It carries the wall-clock time the
// frame fired at, which the frame clock turns into a delta.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
