// Package trivia implements the Trivia Treasure mini-game: ten four-choice
// questions filtered by category and difficulty ceiling, with streak
// bonuses and a per-question countdown.
package trivia

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/content"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/registry"
)

const (
	maxQuestions    = 10
	questionSeconds = 30
	baseCoins       = 2
	baseXP          = 10
	xpPerDifficulty = 5
	flatCoinsPerHit = 3
	flatXPPerHit    = 15
)

// MaxDifficulty is the highest selectable difficulty ceiling.
const MaxDifficulty = 5

// DifficultyNames maps ceiling levels to their display names.
var DifficultyNames = map[int]string{
	1: "Easy",
	2: "Medium",
	3: "Hard",
	4: "Expert",
	5: "Master",
}

// Game is one trivia session. The zero value is unusable; call Setup first.
type Game struct {
	pool []content.TriviaQuestion
	rng  *rand.Rand

	state     registry.State
	questions []content.TriviaQuestion
	index     int
	score     int
	streak    int
}

// New creates an unconfigured trivia session.
func New() *Game {
	return &Game{state: registry.StateMenu}
}

func init() {
	registry.Register("trivia", func() registry.Session {
		return New()
	})
}

// ID returns the mini-game identifier.
func (g *Game) ID() string { return "trivia" }

// Title returns the display name.
func (g *Game) Title() string { return "Trivia Treasure" }

// Description returns the hub menu blurb.
func (g *Game) Description() string {
	return "Answer fun questions and earn coins for puppy treats"
}

// Categories lists the selectable question categories.
func (g *Game) Categories() []string { return content.TriviaCategories() }

// Setup loads the question pool and seeds the RNG.
func (g *Game) Setup(cfg registry.Config) error {
	pool, err := content.LoadTrivia(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("trivia: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.pool = pool
	g.rng = rand.New(rand.NewSource(seed))
	return nil
}

// Start filters the pool by category and difficulty ceiling, shuffles it,
// and begins a session of up to ten questions.
func (g *Game) Start(category string, difficulty int) error {
	if difficulty < 1 || difficulty > MaxDifficulty {
		return fmt.Errorf("trivia: difficulty %d out of range", difficulty)
	}

	var filtered []content.TriviaQuestion
	for _, q := range g.pool {
		if q.Category == category && q.Difficulty <= difficulty {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		return registry.ErrNoContent
	}

	g.rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	if len(filtered) > maxQuestions {
		filtered = filtered[:maxQuestions]
	}

	g.questions = filtered
	g.index = 0
	g.score = 0
	g.streak = 0
	g.state = registry.StateActive
	return nil
}

// Prompt returns the current question.
func (g *Game) Prompt() (registry.Prompt, bool) {
	if g.state != registry.StateActive {
		return registry.Prompt{}, false
	}
	q := g.questions[g.index]
	return registry.Prompt{
		Index:     g.index,
		Total:     len(g.questions),
		Text:      q.Question,
		Choices:   q.Answers,
		PerItem:   true,
		TimeLimit: questionSeconds,
	}, true
}

// Submit judges the chosen answer index and advances the session. A choice
// outside the answer range counts as wrong, which is how timeouts are fed
// through.
func (g *Game) Submit(choice int) (registry.Judgement, error) {
	if g.state != registry.StateActive {
		return registry.Judgement{}, fmt.Errorf("trivia: no active session")
	}

	q := g.questions[g.index]
	correct := choice == q.Correct

	j := registry.Judgement{Correct: correct}
	j.Stats.TriviaQuestionsAnswered = 1

	if correct {
		// The streak bonus uses the streak before this answer.
		j.Reward = registry.Reward{
			Coins: baseCoins + q.Difficulty + (g.streak/3)*2,
			XP:    baseXP + q.Difficulty*xpPerDifficulty,
		}
		j.Stats.TriviaCorrectAnswers = 1
		g.score++
		g.streak++
		note := q.Note
		if note == "" {
			note = "Great job!"
		}
		j.Feedback = fmt.Sprintf("Correct! %s", note)
	} else {
		g.streak = 0
		j.Feedback = fmt.Sprintf("Nice try! The correct answer was: %s", q.Answers[q.Correct])
	}

	g.index++
	if g.index >= len(g.questions) {
		g.state = registry.StateCompleted
		j.Done = true
		j.Stats.SessionsCompleted = 1
	}
	return j, nil
}

// Timeout treats an expired question clock as a forced wrong answer.
func (g *Game) Timeout() registry.Judgement {
	j, err := g.Submit(-1)
	if err != nil {
		return registry.Judgement{}
	}
	return j
}

// Summary reports the completion screen. Totals use the flat per-hit
// formula, separate from the variable rewards credited during play.
func (g *Game) Summary() registry.Summary {
	total := len(g.questions)
	pct := 0
	if total > 0 {
		pct = int(float64(g.score)/float64(total)*100 + 0.5)
	}
	return registry.Summary{
		Score:      g.score,
		Total:      total,
		Percentage: pct,
		Band:       registry.Band(pct),
		Coins:      g.score * flatCoinsPerHit,
		XP:         g.score * flatXPPerHit,
	}
}

// Reset returns the session to the menu state.
func (g *Game) Reset() {
	g.state = registry.StateMenu
	g.questions = nil
	g.index = 0
	g.score = 0
	g.streak = 0
}

// State returns the session lifecycle state.
func (g *Game) State() registry.State { return g.state }

var _ registry.Session = (*Game)(nil)
