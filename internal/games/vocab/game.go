// Package vocab implements the Spanish Fiesta mini-game: up to eight
// vocabulary lessons per session with generated multiple-choice
// distractors, streak bonuses, and a shared session time budget.
package vocab

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/content"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/registry"
)

const (
	maxLessons        = 8
	sessionSeconds    = 60
	wordMatchChoices  = 4
	balloonPopChoices = 6
	baseCoins         = 3
	baseXP            = 15
	xpPerDifficulty   = 8
	flatCoinsPerHit   = 4
	flatXPPerHit      = 20
)

// Mode selects which direction the player translates.
type Mode string

const (
	// ModeWordMatch shows the Spanish word; the player picks the English.
	ModeWordMatch Mode = "wordMatch"
	// ModeBalloonPop shows the English word; the player picks the Spanish.
	ModeBalloonPop Mode = "balloonPop"
)

// Modes returns the playable modes in menu order.
func Modes() []Mode {
	return []Mode{ModeWordMatch, ModeBalloonPop}
}

// ModeTitle returns the display name for a mode.
func ModeTitle(m Mode) string {
	switch m {
	case ModeWordMatch:
		return "Word Match"
	case ModeBalloonPop:
		return "Balloon Pop"
	}
	return string(m)
}

// Game is one vocabulary session. The zero value is unusable; call Setup first.
type Game struct {
	pool []content.Lesson
	rng  *rand.Rand
	mode Mode

	state    registry.State
	category string
	lessons  []content.Lesson
	choices  []string // generated for the current lesson
	index    int
	score    int
	stars    int
	streak   int
}

// New creates an unconfigured vocabulary session in word-match mode.
func New() *Game {
	return &Game{state: registry.StateMenu, mode: ModeWordMatch}
}

func init() {
	registry.Register("vocab", func() registry.Session {
		return New()
	})
}

// ID returns the mini-game identifier.
func (g *Game) ID() string { return "vocab" }

// Title returns the display name.
func (g *Game) Title() string { return "Spanish Fiesta" }

// Description returns the hub menu blurb.
func (g *Game) Description() string {
	return "Learn Spanish words by matching them to English"
}

// Categories lists the selectable lesson categories.
func (g *Game) Categories() []string { return content.SpanishCategories() }

// SetMode switches the translation direction for the next session.
func (g *Game) SetMode(m Mode) { g.mode = m }

// Mode returns the current translation direction.
func (g *Game) Mode() Mode { return g.mode }

// Setup loads the lesson pool and seeds the RNG.
func (g *Game) Setup(cfg registry.Config) error {
	pool, err := content.LoadSpanish(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("vocab: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.pool = pool
	g.rng = rand.New(rand.NewSource(seed))
	return nil
}

// Start filters the pool by category, shuffles it, and begins a session of
// up to eight lessons. The difficulty argument is ignored; vocabulary
// sessions draw from the whole category.
func (g *Game) Start(category string, _ int) error {
	var filtered []content.Lesson
	for _, l := range g.pool {
		if l.Category == category {
			filtered = append(filtered, l)
		}
	}
	if len(filtered) == 0 {
		return registry.ErrNoContent
	}

	g.rng.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	if len(filtered) > maxLessons {
		filtered = filtered[:maxLessons]
	}

	g.category = category
	g.lessons = filtered
	g.index = 0
	g.score = 0
	g.stars = 0
	g.streak = 0
	g.state = registry.StateActive
	g.buildChoices()
	return nil
}

// choiceCount returns the answer set size for the current mode. Balloon
// pop fills the screen with six balloons; word match shows four cards.
func (g *Game) choiceCount() int {
	if g.mode == ModeBalloonPop {
		return balloonPopChoices
	}
	return wordMatchChoices
}

// buildChoices generates the answer set for the current lesson: the correct
// word plus distractors sampled without replacement from the same category,
// all shuffled together.
func (g *Game) buildChoices() {
	lesson := g.lessons[g.index]

	answerOf := func(l content.Lesson) string {
		if g.mode == ModeBalloonPop {
			return l.Spanish
		}
		return l.English
	}
	correct := answerOf(lesson)

	var others []string
	seen := map[string]bool{correct: true}
	for _, l := range g.pool {
		if l.Category != g.category {
			continue
		}
		a := answerOf(l)
		if seen[a] {
			continue
		}
		seen[a] = true
		others = append(others, a)
	}

	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if n := g.choiceCount() - 1; len(others) > n {
		others = others[:n]
	}

	choices := append([]string{correct}, others...)
	g.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	g.choices = choices
}

// Prompt returns the current lesson with its generated choices.
func (g *Game) Prompt() (registry.Prompt, bool) {
	if g.state != registry.StateActive {
		return registry.Prompt{}, false
	}
	l := g.lessons[g.index]
	text := l.Spanish
	sub := fmt.Sprintf("%s  %s", l.Emoji, l.Pronunciation)
	if g.mode == ModeBalloonPop {
		text = l.English
		sub = l.Emoji
	}
	return registry.Prompt{
		Index:     g.index,
		Total:     len(g.lessons),
		Text:      text,
		Subtext:   sub,
		Choices:   g.choices,
		PerItem:   false,
		TimeLimit: sessionSeconds,
	}, true
}

// Submit judges the chosen answer and advances the session.
func (g *Game) Submit(choice int) (registry.Judgement, error) {
	if g.state != registry.StateActive {
		return registry.Judgement{}, fmt.Errorf("vocab: no active session")
	}

	l := g.lessons[g.index]
	want := l.English
	if g.mode == ModeBalloonPop {
		want = l.Spanish
	}
	correct := choice >= 0 && choice < len(g.choices) && g.choices[choice] == want

	j := registry.Judgement{Correct: correct}
	j.Stats.SpanishLessonsCompleted = 1

	if correct {
		// The streak bonus uses the streak before this answer.
		j.Reward = registry.Reward{
			Coins: baseCoins + l.Difficulty + (g.streak/3)*2,
			XP:    baseXP + l.Difficulty*xpPerDifficulty,
		}
		j.Stats.SpanishWordsLearned = 1
		g.score++
		g.stars++
		g.streak++
		j.Feedback = fmt.Sprintf("Correct! %s means %s!", l.Spanish, l.English)
	} else {
		g.streak = 0
		j.Feedback = fmt.Sprintf("Nice try! %s means %s.", l.Spanish, l.English)
	}

	g.index++
	if g.index >= len(g.lessons) {
		g.state = registry.StateCompleted
		j.Done = true
		j.Stats.SessionsCompleted = 1
	} else {
		g.buildChoices()
	}
	return j, nil
}

// Timeout ends the whole session when the shared budget runs out. Lessons
// not reached are simply not scored.
func (g *Game) Timeout() registry.Judgement {
	if g.state != registry.StateActive {
		return registry.Judgement{}
	}
	g.state = registry.StateCompleted
	var j registry.Judgement
	j.Done = true
	j.Stats.SessionsCompleted = 1
	j.Feedback = "Time's up!"
	return j
}

// Stars returns the stars earned this session.
func (g *Game) Stars() int { return g.stars }

// Summary reports the completion screen. Totals use the flat per-hit
// formula, separate from the variable rewards credited during play.
func (g *Game) Summary() registry.Summary {
	total := len(g.lessons)
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
	g.lessons = nil
	g.choices = nil
	g.index = 0
	g.score = 0
	g.stars = 0
	g.streak = 0
}

// State returns the session lifecycle state.
func (g *Game) State() registry.State { return g.state }

var _ registry.Session = (*Game)(nil)
