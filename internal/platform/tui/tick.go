// Package tui provides the Bubble Tea integration for the puppyverse.
// It handles the terminal UI loop, input mapping, and view orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/sim"
)

// DecayTickMsg fires on the stat decay interval while the hub is open.
type DecayTickMsg time.Time

// CountdownTickMsg fires once a second while a quiz timer is running.
// Gen identifies the quiz view whose chain produced the tick; ticks
// from an earlier view are dropped so only one chain ever counts.
type CountdownTickMsg struct {
	Gen int
}

// AnimDoneMsg fires when a puppy's action animation has played out.
type AnimDoneMsg struct {
	PuppyID string
}

// decayTickCmd schedules the next stat decay tick.
func decayTickCmd() tea.Cmd {
	return tea.Tick(sim.TickInterval, func(t time.Time) tea.Msg {
		return DecayTickMsg(t)
	})
}

// countdownTickCmd schedules the next quiz countdown tick.
func countdownTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CountdownTickMsg{Gen: gen}
	})
}

// animDoneCmd schedules the animation reset for a puppy.
func animDoneCmd(puppyID string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AnimDoneMsg{PuppyID: puppyID}
	})
}
