package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/config"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/registry"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/sim"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/storage"
)

// hubState identifies the active view.
type hubState int

const (
	stateHub hubState = iota
	stateCare
	stateZones
	stateInventory
	stateStats
	stateSettings
	stateQuiz
	stateResetConfirm
)

// hubEntry is one selectable row on the hub menu.
type hubEntry struct {
	label string
	state hubState
	game  string // registry ID when the entry launches a mini-game
}

func hubEntries() []hubEntry {
	return []hubEntry{
		{label: "🐶 Puppy Care", state: stateCare},
		{label: "🎯 Trivia Treasure", state: stateQuiz, game: "trivia"},
		{label: "🎉 Spanish Fiesta", state: stateQuiz, game: "vocab"},
		{label: "🗺  Zones", state: stateZones},
		{label: "🎒 Inventory", state: stateInventory},
		{label: "📊 Stats", state: stateStats},
		{label: "⚙  Settings", state: stateSettings},
	}
}

// HubModel is the top-level Bubble Tea model: the hub menu plus every
// sub-view. One instance owns the save for its whole session.
type HubModel struct {
	store     *storage.Store
	save      *game.SaveData
	settings  config.Settings
	engine    *sim.Engine
	debouncer *storage.Debouncer
	theme     Theme
	keys      *KeyMapper

	state          hubState
	cursor         int
	settingsCursor int
	width          int
	height         int

	care CareModel
	quiz *QuizModel
	seed int64

	// timerGen names the countdown chain armed for the current quiz
	// view. Ticks carrying an older generation are ignored, so opening
	// a new quiz never leaves two live chains.
	timerGen int

	status   string
	quitting bool
}

// NewHubModel loads (or creates) the save and builds the hub. A zero
// seed means time-based randomness.
func NewHubModel(store *storage.Store, seed int64) HubModel {
	save, err := store.LoadGame()
	if err != nil || save == nil {
		save = game.NewSave()
	}
	settings, err := store.LoadSettings()
	if err != nil {
		settings = config.DefaultSettings()
	}

	m := HubModel{
		store:    store,
		save:     save,
		settings: settings,
		engine:   sim.New(seed),
		theme:    DefaultTheme(),
		keys:     NewKeyMapper(),
		seed:     seed,
	}
	m.debouncer = storage.NewDebouncer(storage.AutosaveDelay, store.SaveGame)
	m.care = NewCareModel(save, m.engine, m.theme)
	return m
}

// Init starts the stat decay loop.
func (m HubModel) Init() tea.Cmd {
	return decayTickCmd()
}

// scheduleSave queues a debounced write if auto-save is on. The
// debouncer gets its own copy of the save; the event loop keeps
// mutating the live one while the timer waits.
func (m *HubModel) scheduleSave() {
	if m.settings.AutoSave {
		m.debouncer.Schedule(m.save.Clone())
	}
}

// Update handles messages for the hub and routes them to sub-views.
func (m HubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DecayTickMsg:
		// Stats decay in every view, even mid-quiz.
		sim.TickAll(m.save.Puppies)
		m.scheduleSave()
		return m, decayTickCmd()

	case AnimDoneMsg:
		m.care.ClearAnimation(msg.PuppyID)
		return m, nil

	case CountdownTickMsg:
		if m.state != stateQuiz || m.quiz == nil || msg.Gen != m.timerGen {
			// A tick from a closed quiz view; let its chain die.
			return m, nil
		}
		keep := m.quiz.Tick()
		if m.quiz.Finished() {
			m.scheduleSave()
		}
		if keep {
			return m, countdownTickCmd(m.timerGen)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m HubModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c saves and quits from anywhere.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case stateHub:
		return m.handleHubKey(msg)
	case stateCare:
		var cmd tea.Cmd
		back := false
		m.care, cmd, back = m.care.HandleKey(msg)
		if back {
			m.state = stateHub
		} else if cmd != nil {
			m.scheduleSave()
		}
		return m, cmd
	case stateQuiz:
		if m.quiz == nil {
			m.state = stateHub
			return m, nil
		}
		if m.quiz.HandleKey(msg) {
			m.quiz = nil
			m.state = stateHub
			m.scheduleSave()
		}
		return m, nil
	case stateResetConfirm:
		return m.handleResetKey(msg)
	case stateSettings:
		return m.handleSettingsKey(msg)
	default:
		// Zones, inventory and stats are read-only views.
		action := m.keys.MapKeyToMenuAction(msg)
		if action == MenuActionBack || action == MenuActionSelect || action == MenuActionQuit {
			m.state = stateHub
		}
		return m, nil
	}
}

func (m HubModel) handleHubKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := hubEntries()
	m.status = ""

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.quit()

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		entry := entries[m.cursor]
		if entry.game != "" {
			return m.startQuiz(entry.game)
		}
		m.state = entry.state
		return m, nil

	case MenuActionBack:
		return m.quit()
	}

	switch msg.String() {
	case "S":
		if err := m.store.SaveGame(m.save); err != nil {
			m.status = "Save failed: " + err.Error()
		} else {
			m.status = "Game saved!"
		}
	case "R":
		m.state = stateResetConfirm
	}

	return m, nil
}

// startQuiz creates and configures a mini-game session view.
func (m HubModel) startQuiz(id string) (tea.Model, tea.Cmd) {
	session, err := registry.Create(id)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	if err := session.Setup(registry.Config{Seed: m.seed}); err != nil {
		m.status = err.Error()
		return m, nil
	}

	quiz := NewQuizModel(session, m.save, m.settings, m.theme)
	m.quiz = &quiz
	m.state = stateQuiz
	// The one place a countdown chain is armed.
	m.timerGen++
	return m, countdownTickCmd(m.timerGen)
}

func (m HubModel) handleResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.debouncer.Cancel()
		if err := m.store.Clear(); err != nil {
			m.status = "Reset failed: " + err.Error()
		} else {
			*m.save = *game.NewSave()
			m.settings = config.DefaultSettings()
			m.status = "Fresh start!"
		}
		m.state = stateHub
	default:
		m.state = stateHub
	}
	return m, nil
}

func (m HubModel) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKeyToMenuAction(msg)
	const rows = 5 // sound, music, notifications, autosave, difficulty

	switch action {
	case MenuActionBack, MenuActionQuit:
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.status = "Could not store settings: " + err.Error()
		}
		m.state = stateHub
		return m, nil
	case MenuActionUp:
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case MenuActionDown:
		if m.settingsCursor < rows-1 {
			m.settingsCursor++
		}
	case MenuActionSelect, MenuActionLeft, MenuActionRight:
		switch m.settingsCursor {
		case 0:
			m.settings.SoundEnabled = !m.settings.SoundEnabled
		case 1:
			m.settings.MusicEnabled = !m.settings.MusicEnabled
		case 2:
			m.settings.NotificationsEnabled = !m.settings.NotificationsEnabled
		case 3:
			m.settings.AutoSave = !m.settings.AutoSave
		case 4:
			m.settings.Difficulty = nextPreset(m.settings.Difficulty)
		}
	}
	return m, nil
}

func nextPreset(p config.DifficultyPreset) config.DifficultyPreset {
	presets := config.Presets()
	for i, candidate := range presets {
		if candidate == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}

// quit flushes any pending save and exits.
func (m HubModel) quit() (tea.Model, tea.Cmd) {
	if err := m.debouncer.Flush(m.save); err != nil {
		m.status = "Save failed: " + err.Error()
	}
	m.quitting = true
	return m, tea.Quit
}

// View renders the active view.
func (m HubModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateCare:
		return m.care.View(m.width)
	case stateQuiz:
		if m.quiz != nil {
			return m.quiz.View(m.width)
		}
	case stateZones:
		return m.zonesView()
	case stateInventory:
		return m.inventoryView()
	case stateStats:
		return m.statsView()
	case stateSettings:
		return m.settingsView()
	case stateResetConfirm:
		return m.resetConfirmView()
	}
	return m.hubView()
}

func (m HubModel) hubView() string {
	var b strings.Builder

	title := "🐾 Kataya's Puppyverse 🐾"
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render(title), m.width))
	b.WriteString("\n\n")

	p := m.save.PlayerData
	status := fmt.Sprintf("%s  •  Level %d  •  💰 %d  •  XP %d/%d",
		p.Name, p.Level, p.Coins, p.Experience, p.ExperienceToNext)
	b.WriteString(centerText(m.theme.Subtitle.Render(status), m.width))
	b.WriteString("\n\n")

	for i, entry := range hubEntries() {
		style := m.theme.MenuItemNormal
		cursor := "  "
		if i == m.cursor {
			style = m.theme.MenuItemActive
			cursor = "> "
		}
		b.WriteString(centerText(cursor+style.Render(entry.label), m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Feedback.Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  S: Save  |  R: Reset  |  Q: Quit"
	b.WriteString(centerText(m.theme.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m HubModel) resetConfirmView() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Title.Render("Start over?"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("This erases the puppies' progress and cannot be undone.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Help.Render("Y: Yes, reset  |  any other key: Cancel"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Quitting reports whether the user asked to exit.
func (m HubModel) Quitting() bool { return m.quitting }

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// Run starts the local Bubble Tea program over the given store.
func Run(store *storage.Store, seed int64) error {
	model := NewHubModel(store, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// elapsedSince formats a nullable timestamp for the care view.
func elapsedSince(t *time.Time) string {
	if t == nil {
		return "never"
	}
	d := time.Since(*t).Round(time.Minute)
	if d < time.Minute {
		return "just now"
	}
	return d.String() + " ago"
}
