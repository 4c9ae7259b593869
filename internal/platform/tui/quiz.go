package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/config"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/games/vocab"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/registry"
)

// quizPhase tracks where the player is inside a mini-game session.
type quizPhase int

const (
	phaseCategory quizPhase = iota
	phaseMode
	phaseQuestion
	phaseFeedback
	phaseSummary
)

// modeSetter is implemented by sessions with a direction toggle.
type modeSetter interface {
	SetMode(vocab.Mode)
}

// QuizModel drives one mini-game session: category pick, questions with
// a countdown, per-answer feedback, and the summary screen.
type QuizModel struct {
	session  registry.Session
	save     *game.SaveData
	settings config.Settings
	theme    Theme
	keys     *KeyMapper

	phase      quizPhase
	categories []string
	cursor     int
	prompt     registry.Prompt
	remaining  int
	judgement  registry.Judgement
	status     string
}

// NewQuizModel builds a session view. Setup must already have run.
func NewQuizModel(session registry.Session, save *game.SaveData, settings config.Settings, theme Theme) QuizModel {
	return QuizModel{
		session:    session,
		save:       save,
		settings:   settings,
		theme:      theme,
		keys:       NewKeyMapper(),
		categories: session.Categories(),
	}
}

// Finished reports whether the summary screen is showing.
func (q *QuizModel) Finished() bool { return q.phase == phaseSummary }

// Tick advances the countdown by one second and reports whether the
// chain should schedule another tick. Time only passes while a question
// is showing; feedback and menus keep the chain alive but pause the
// clock. The hub owns the chain itself.
func (q *QuizModel) Tick() bool {
	if q.phase != phaseQuestion {
		return q.phase != phaseSummary
	}

	q.remaining--
	if q.remaining > 0 {
		return true
	}

	j := q.session.Timeout()
	q.applyRewards(j)
	q.judgement = j
	if j.Done {
		q.phase = phaseSummary
		return false
	}
	q.phase = phaseFeedback
	return true
}

// applyRewards credits coins, XP and counters to the save.
func (q *QuizModel) applyRewards(j registry.Judgement) {
	q.save.PlayerData.GainCoins(j.Reward.Coins)
	q.save.PlayerData.GainXP(j.Reward.XP)
	q.save.GameStats.Add(j.Stats)
}

// HandleKey processes input. The returned bool is true when the view
// should close.
func (q *QuizModel) HandleKey(msg tea.KeyMsg) bool {
	switch q.phase {
	case phaseCategory:
		return q.handleCategoryKey(msg)
	case phaseMode:
		return q.handleModeKey(msg)
	case phaseQuestion:
		return q.handleQuestionKey(msg)
	case phaseFeedback:
		return q.handleFeedbackKey(msg)
	default:
		// Any key leaves the summary.
		return true
	}
}

func (q *QuizModel) handleCategoryKey(msg tea.KeyMsg) bool {
	switch q.keys.MapKeyToMenuAction(msg) {
	case MenuActionBack, MenuActionQuit:
		return true
	case MenuActionUp:
		if q.cursor > 0 {
			q.cursor--
		}
	case MenuActionDown:
		if q.cursor < len(q.categories)-1 {
			q.cursor++
		}
	case MenuActionSelect:
		if _, ok := q.session.(modeSetter); ok {
			q.phase = phaseMode
			return false
		}
		q.start()
	}
	return false
}

func (q *QuizModel) handleModeKey(msg tea.KeyMsg) bool {
	setter := q.session.(modeSetter)
	switch q.keys.MapKeyToMenuAction(msg) {
	case MenuActionBack, MenuActionQuit:
		q.phase = phaseCategory
	case MenuActionSelect, MenuActionLeft:
		setter.SetMode(vocab.ModeWordMatch)
		q.start()
	case MenuActionRight:
		setter.SetMode(vocab.ModeBalloonPop)
		q.start()
	}
	return false
}

// start begins the session for the chosen category. An empty filtered
// pool keeps the player on the picker with a message.
func (q *QuizModel) start() {
	category := q.categories[q.cursor]
	ceiling := config.TriviaCeiling(q.settings.Difficulty)

	if err := q.session.Start(category, ceiling); err != nil {
		if errors.Is(err, registry.ErrNoContent) {
			q.status = "No questions there yet - try another category!"
		} else {
			q.status = err.Error()
		}
		q.phase = phaseCategory
		return
	}

	q.status = ""
	q.prompt, _ = q.session.Prompt()
	q.remaining = q.prompt.TimeLimit
	q.phase = phaseQuestion
}

func (q *QuizModel) handleQuestionKey(msg tea.KeyMsg) bool {
	choice := -1
	switch q.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return true
	case MenuActionUp:
		if q.cursor > 0 {
			q.cursor--
		}
		return false
	case MenuActionDown:
		if q.cursor < len(q.prompt.Choices)-1 {
			q.cursor++
		}
		return false
	case MenuActionSelect:
		choice = q.cursor
	default:
		if n := q.keys.ChoiceIndex(msg); n >= 0 && n < len(q.prompt.Choices) {
			choice = n
		}
	}
	if choice < 0 {
		return false
	}

	j, err := q.session.Submit(choice)
	if err != nil {
		return false
	}
	q.applyRewards(j)
	q.judgement = j
	q.cursor = 0
	if j.Done {
		q.phase = phaseSummary
		return false
	}
	q.phase = phaseFeedback
	return false
}

func (q *QuizModel) handleFeedbackKey(msg tea.KeyMsg) bool {
	if q.keys.MapKeyToMenuAction(msg) == MenuActionQuit {
		return true
	}

	q.prompt, _ = q.session.Prompt()
	if q.prompt.PerItem {
		q.remaining = q.prompt.TimeLimit
	}
	q.phase = phaseQuestion
	return false
}

// View renders the current phase.
func (q *QuizModel) View(width int) string {
	switch q.phase {
	case phaseCategory:
		return q.categoryView(width)
	case phaseMode:
		return q.modeView(width)
	case phaseQuestion:
		return q.questionView(width)
	case phaseFeedback:
		return q.feedbackView(width)
	default:
		return q.summaryView(width)
	}
}

func (q *QuizModel) categoryView(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(q.theme.Title.Render(q.session.Title()), width))
	b.WriteString("\n")
	b.WriteString(centerText(q.theme.Subtitle.Render(q.session.Description()), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a category", width))
	b.WriteString("\n\n")

	for i, cat := range q.categories {
		style := q.theme.MenuItemNormal
		cursor := "  "
		if i == q.cursor {
			style = q.theme.MenuItemActive
			cursor = "> "
		}
		b.WriteString(centerText(cursor+style.Render(cat), width))
		b.WriteString("\n")
	}

	if q.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(q.theme.QuizWrong.Render(q.status), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(q.theme.Help.Render("Up/Down: Navigate  |  Enter: Start  |  Esc: Back"), width))
	b.WriteString("\n")
	return b.String()
}

func (q *QuizModel) modeView(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(q.theme.Title.Render("How do you want to play?"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(vocab.ModeTitle(vocab.ModeWordMatch)+": see Spanish, pick English", width))
	b.WriteString("\n")
	b.WriteString(centerText(vocab.ModeTitle(vocab.ModeBalloonPop)+": see English, pick Spanish", width))
	b.WriteString("\n\n")
	b.WriteString(centerText(q.theme.Help.Render("Enter/Left: Word Match  |  Right: Balloon Pop  |  Esc: Back"), width))
	b.WriteString("\n")
	return b.String()
}

func (q *QuizModel) questionView(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("%s  •  %d / %d", q.session.Title(), q.prompt.Index+1, q.prompt.Total)
	b.WriteString(centerText(q.theme.Subtitle.Render(header), width))
	b.WriteString("\n")

	timer := fmt.Sprintf("⏱  %ds", q.remaining)
	b.WriteString(centerText(q.theme.QuizTimer.Render(timer), width))
	b.WriteString("\n\n")

	b.WriteString(centerText(q.theme.QuizQuestion.Render(q.prompt.Text), width))
	b.WriteString("\n")
	if q.prompt.Subtext != "" {
		b.WriteString(centerText(q.theme.Subtitle.Render(q.prompt.Subtext), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, choice := range q.prompt.Choices {
		style := q.theme.MenuItemNormal
		cursor := "  "
		if i == q.cursor {
			style = q.theme.MenuItemActive
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, style.Render(choice))
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := fmt.Sprintf("1-%d or Enter: Answer  |  Q: Leave", len(q.prompt.Choices))
	b.WriteString(centerText(q.theme.Help.Render(help), width))
	b.WriteString("\n")
	return b.String()
}

func (q *QuizModel) feedbackView(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	style := q.theme.QuizWrong
	if q.judgement.Correct {
		style = q.theme.QuizCorrect
	}
	b.WriteString(centerText(style.Render(q.judgement.Feedback), width))
	b.WriteString("\n")

	if q.judgement.Correct {
		reward := fmt.Sprintf("+%d coins  •  +%d XP", q.judgement.Reward.Coins, q.judgement.Reward.XP)
		b.WriteString(centerText(q.theme.Coins.Render(reward), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(q.theme.Help.Render("Any key: Next question"), width))
	b.WriteString("\n")
	return b.String()
}

func (q *QuizModel) summaryView(width int) string {
	s := q.session.Summary()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(q.theme.Title.Render("Session complete!"), width))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d  (%d%%)  •  %s", s.Score, s.Total, s.Percentage, s.Band)
	b.WriteString(centerText(q.theme.QuizQuestion.Render(score), width))
	b.WriteString("\n")

	totals := fmt.Sprintf("💰 %d coins  •  ✨ %d XP", s.Coins, s.XP)
	b.WriteString(centerText(q.theme.Coins.Render(totals), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(q.theme.Help.Render("Any key: Back to hub"), width))
	b.WriteString("\n")
	return b.String()
}
