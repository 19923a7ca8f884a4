// Package tui provides the Bubble Tea integration for the tetris platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clock measures wall time between consecutive ticks.
type clock struct {
	last time.Time
}

// elapsed returns the time since the previous tick. The first tick and any
// tick that arrives out of order report zero.
func (c *clock) elapsed(now time.Time) time.Duration {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	return d
}
