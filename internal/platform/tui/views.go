package tui

import (
	"fmt"
	"strings"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

func (m HubModel) zonesView() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("🗺  Zones"), m.width))
	b.WriteString("\n\n")

	for _, z := range m.save.Zones {
		line := fmt.Sprintf("%s %s", z.Icon, z.Name)
		if z.UnlockedFor(&m.save.PlayerData) {
			b.WriteString("  " + m.theme.MenuItemNormal.Render(line))
			b.WriteString("\n")
			b.WriteString("     " + m.theme.Subtitle.Render(z.Description))
		} else {
			b.WriteString("  " + m.theme.Locked.Render(line+" 🔒"))
			b.WriteString("\n")
			b.WriteString("     " + m.theme.Locked.Render(fmt.Sprintf("Unlocks at level %d", z.UnlockLevel)))
		}
		b.WriteString("\n\n")
	}

	b.WriteString("  " + m.theme.Help.Render("Esc: Back"))
	b.WriteString("\n")
	return b.String()
}

func (m HubModel) inventoryView() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("🎒 Inventory"), m.width))
	b.WriteString("\n\n")

	for _, item := range m.save.Inventory {
		style := m.theme.MenuItemNormal
		if item.Quantity == 0 {
			style = m.theme.MenuItemDim
		}
		tag := ""
		if item.Rarity == game.RarityRare {
			tag = " ✨"
		}
		line := fmt.Sprintf("%-14s ×%-3d %s%s", item.Name, item.Quantity, string(item.Type), tag)
		b.WriteString("  " + style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n  " + m.theme.Help.Render("Esc: Back"))
	b.WriteString("\n")
	return b.String()
}

func (m HubModel) statsView() string {
	s := m.save.GameStats

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("📊 Stats"), m.width))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value int
	}{
		{"Trivia questions answered", s.TriviaQuestionsAnswered},
		{"Trivia correct answers", s.TriviaCorrectAnswers},
		{"Spanish words learned", s.SpanishWordsLearned},
		{"Spanish lessons completed", s.SpanishLessonsCompleted},
		{"Puppy interactions", s.PuppyInteractions},
		{"Feedings", s.PuppyFeedings},
		{"Play sessions", s.PuppyPlaySessions},
		{"Mini-game sessions completed", s.SessionsCompleted},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %d\n",
			m.theme.StatLabel.Render(fmt.Sprintf("%-30s", row.label)), row.value))
	}

	b.WriteString("\n  " + m.theme.Help.Render("Esc: Back"))
	b.WriteString("\n")
	return b.String()
}

func (m HubModel) settingsView() string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Sound", onOff(m.settings.SoundEnabled)},
		{"Music", onOff(m.settings.MusicEnabled)},
		{"Notifications", onOff(m.settings.NotificationsEnabled)},
		{"Auto-save", onOff(m.settings.AutoSave)},
		{"Difficulty", string(m.settings.Difficulty)},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("⚙  Settings"), m.width))
	b.WriteString("\n\n")

	for i, row := range rows {
		style := m.theme.MenuItemNormal
		cursor := "  "
		if i == m.settingsCursor {
			style = m.theme.MenuItemActive
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor, style.Render(fmt.Sprintf("%-15s", row.label)), row.value))
	}

	b.WriteString("\n  " + m.theme.Help.Render("Enter: Toggle/Cycle  |  Esc: Save and back"))
	b.WriteString("\n")
	return b.String()
}
