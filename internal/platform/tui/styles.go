package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

// Theme contains all configurable visual styles for the hub.
type Theme struct {
	// Chrome
	Title    Style
	Subtitle Style
	Help     Style
	Panel    Style

	// Menu styles
	MenuItemNormal Style
	MenuItemActive Style
	MenuItemDim    Style

	// Puppy care styles
	StatLabel Style
	MoodHappy Style
	MoodSad   Style
	Feedback  Style
	Locked    Style

	// Quiz styles
	QuizQuestion Style
	QuizTimer    Style
	QuizCorrect  Style
	QuizWrong    Style
	Coins        Style
}

// Style aliases lipgloss.Style so theme fields read uniformly.
type Style = lipgloss.Style

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		MenuItemActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		MenuItemDim:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		StatLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MoodHappy: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
		MoodSad:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // Orange
		Feedback:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
		Locked:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		QuizQuestion: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		QuizTimer:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
		QuizCorrect:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		QuizWrong:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Coins:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// moodStyle picks the style for a mood band.
func (t Theme) moodStyle(m game.Mood) Style {
	switch m {
	case game.MoodHappy, game.MoodContent:
		return t.MoodHappy
	default:
		return t.MoodSad
	}
}

// moodFace maps a mood to a display face.
func moodFace(m game.Mood) string {
	switch m {
	case game.MoodHappy:
		return "😊"
	case game.MoodContent:
		return "🙂"
	case game.MoodSad:
		return "😞"
	default:
		return "😢"
	}
}

// animationFace maps a transient animation to a display label.
func animationFace(a game.Animation) string {
	switch a {
	case game.AnimEating:
		return "🍖 eating"
	case game.AnimJumping:
		return "🦘 jumping"
	case game.AnimWagging:
		return "🐕 wagging"
	case game.AnimCuddling:
		return "🤗 cuddling"
	case game.AnimTraining:
		return "🎓 training"
	case game.AnimFetching:
		return "🎾 fetching"
	case game.AnimGrooming:
		return "🪮 grooming"
	case game.AnimSleeping:
		return "💤 sleeping"
	case game.AnimBathing:
		return "🛁 bathing"
	case game.AnimIdle:
		return ""
	}
	return string(a)
}
