// Package registry provides a global registry for mini-game factories.
// Mini-games register themselves in init() functions, allowing the hub
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

// ErrNoContent signals that a session cannot start because the filtered
// content pool is empty. Callers must not enter the session in that case.
var ErrNoContent = errors.New("registry: no content for the selected filters")

// State is the session lifecycle.
type State string

const (
	StateMenu      State = "menu"
	StateActive    State = "active"
	StateCompleted State = "completed"
)

// Config is passed to a session before it starts. The seed drives all
// shuffling and distractor sampling so sessions are reproducible.
type Config struct {
	Seed        int64
	ContentPath string // optional custom content YAML
}

// Reward is the coins and experience credited for one correct answer.
type Reward struct {
	Coins int
	XP    int
}

// Prompt is the current item presented to the player.
type Prompt struct {
	Index     int // zero-based position in the session
	Total     int
	Text      string
	Subtext   string // emoji, pronunciation, or other hint
	Choices   []string
	PerItem   bool // true if TimeLimit applies per item, false for a session budget
	TimeLimit int  // seconds
}

// Judgement is the result of answering (or timing out on) one item.
type Judgement struct {
	Correct  bool
	Feedback string
	Reward   Reward
	Stats    game.GameStats // counter deltas for the caller to fold in
	Done     bool           // true when the session just completed
}

// Summary describes a completed session. Coins and XP here are the flat
// display aggregates, not the sum of per-item rewards already credited.
type Summary struct {
	Score      int
	Total      int
	Percentage int
	Band       string
	Coins      int
	XP         int
}

// Session is the contract every mini-game implements. Sessions hold pure
// game logic; timers and rendering belong to the platform.
type Session interface {
	// ID returns a unique identifier (e.g. "trivia"). Used for CLI
	// commands and registry lookup.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line blurb for the hub menu.
	Description() string

	// Categories lists the selectable content categories.
	Categories() []string

	// Setup loads the content pool and seeds the RNG. Called once
	// before the first Start.
	Setup(cfg Config) error

	// Start begins a session for the category (and, where the game
	// supports it, a difficulty ceiling). Returns ErrNoContent when the
	// filtered pool is empty.
	Start(category string, difficulty int) error

	// Prompt returns the current item. ok is false outside StateActive.
	Prompt() (p Prompt, ok bool)

	// Submit judges the given choice index for the current item and
	// advances the session.
	Submit(choice int) (Judgement, error)

	// Timeout applies the game's timeout policy: either a forced wrong
	// answer or immediate completion, depending on the game.
	Timeout() Judgement

	// Summary reports the completion screen data. Valid in StateCompleted.
	Summary() Summary

	// Reset returns the session to the menu state.
	Reset()

	// State returns the current lifecycle state.
	State() State
}

// Info contains metadata about a registered mini-game.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new session instance.
type Factory func() Session

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a mini-game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mini-game %q already registered", id))
	}

	factories[id] = f

	s := f()
	infos[id] = Info{ID: id, Title: s.Title(), Description: s.Description()}
}

// List returns information about all registered mini-games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new session by its mini-game ID.
func Create(id string) (Session, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mini-game %q", id)
	}

	return f(), nil
}

// Exists checks if a mini-game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Band maps a completion percentage to its message tier.
func Band(percentage int) string {
	switch {
	case percentage >= 90:
		return "excellent"
	case percentage >= 70:
		return "great"
	case percentage >= 50:
		return "good"
	default:
		return "keep practicing"
	}
}
