// Package sim implements the puppy simulation: periodic need decay and the
// resolution of player-initiated care actions. All functions transform the
// in-memory snapshot deterministically; the one random choice (which skill
// improves on train) goes through an injected RNG so tests can seed it.
package sim

import (
	"math/rand"
	"time"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/game"
)

// TickInterval is how often puppy needs decay.
const TickInterval = 30 * time.Second

// Action is a closed set of care actions a player can take on one puppy.
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionCuddle
	ActionTrain
	ActionFetch
	ActionGroom
	ActionSleep
	ActionBathe
)

var actionNames = map[Action]string{
	ActionFeed:   "feed",
	ActionPlay:   "play",
	ActionCuddle: "cuddle",
	ActionTrain:  "train",
	ActionFetch:  "fetch",
	ActionGroom:  "groom",
	ActionSleep:  "sleep",
	ActionBathe:  "bathe",
}

// String returns the action's wire name.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseAction maps a wire name back to an Action.
func ParseAction(s string) (Action, bool) {
	for a, name := range actionNames {
		if name == s {
			return a, true
		}
	}
	return 0, false
}

// Actions returns all actions in menu order.
func Actions() []Action {
	return []Action{
		ActionFeed, ActionPlay, ActionCuddle, ActionTrain,
		ActionFetch, ActionGroom, ActionSleep, ActionBathe,
	}
}

// Engine resolves actions against the snapshot. The RNG is injected so a
// fixed seed reproduces the same skill picks.
type Engine struct {
	rng *rand.Rand
}

// New creates an engine seeded with the given value. A zero seed falls back
// to the current time, matching how the platform seeds games.
func New(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Tick applies one decay step to a single puppy: hunger -1, energy -0.5,
// and happiness -2 while either need is below 30. Mood is derived, so only
// the bounded stats change here.
func Tick(p *game.Puppy) {
	p.Hunger = game.Clamp(p.Hunger-1, 0, 100)
	p.Energy = game.Clamp(p.Energy-0.5, 0, 100)
	if p.Hunger < 30 || p.Energy < 30 {
		p.Happiness = game.Clamp(p.Happiness-2, 0, 100)
	}
	levelUp(p)
}

// TickAll applies the decay step to every puppy independently.
func TickAll(puppies []game.Puppy) {
	for i := range puppies {
		Tick(&puppies[i])
	}
}

// Outcome reports what an action did. Applied is false when the action's
// guard rejected it, in which case nothing changed.
type Outcome struct {
	Applied        bool
	Animation      game.Animation
	AnimationDelay time.Duration
	PlayerXP       int
}

// Apply resolves one action against the named puppy, mutating the snapshot
// in place. A failing guard leaves the snapshot untouched and returns
// Applied=false; that is a policy choice, not an error.
func (e *Engine) Apply(save *game.SaveData, puppyID string, action Action, now time.Time) Outcome {
	p := save.PuppyByID(puppyID)
	if p == nil {
		return Outcome{}
	}

	var out Outcome
	switch action {
	case ActionFeed:
		if !game.HasFood(save.Inventory) {
			return Outcome{}
		}
		game.ConsumeFood(save.Inventory)
		p.Hunger = game.Clamp(p.Hunger+25, 0, 100)
		p.Happiness = game.Clamp(p.Happiness+15, 0, 100)
		t := now
		p.LastFed = &t
		save.GameStats.PuppyFeedings++
		out = Outcome{Applied: true, Animation: game.AnimEating, AnimationDelay: 3 * time.Second}

	case ActionPlay:
		if p.Energy < 25 {
			return Outcome{}
		}
		p.Energy = game.Clamp(p.Energy-25, 0, 100)
		p.Happiness = game.Clamp(p.Happiness+20, 0, 100)
		p.Experience += 5
		t := now
		p.LastPlayed = &t
		save.GameStats.PuppyPlaySessions++
		anim := game.AnimWagging
		if p.Personality == game.PersonalityEnergetic {
			anim = game.AnimJumping
		}
		out = Outcome{Applied: true, Animation: anim, AnimationDelay: 3 * time.Second}

	case ActionCuddle:
		p.Happiness = game.Clamp(p.Happiness+25, 0, 100)
		p.Energy = game.Clamp(p.Energy+5, 0, 100)
		p.Experience += 3
		out = Outcome{Applied: true, Animation: game.AnimCuddling, AnimationDelay: 2500 * time.Millisecond}

	case ActionTrain:
		if p.Energy < 20 {
			return Outcome{}
		}
		p.Energy = game.Clamp(p.Energy-20, 0, 100)
		p.Happiness = game.Clamp(p.Happiness+15, 0, 100)
		p.Experience += 8
		skills := game.Skills()
		p.Skills.Add(skills[e.rng.Intn(len(skills))], 5)
		out = Outcome{Applied: true, Animation: game.AnimTraining, AnimationDelay: 3500 * time.Millisecond}

	case ActionFetch:
		if p.Energy < 30 || p.Skills.Fetch >= 100 {
			return Outcome{}
		}
		p.Energy = game.Clamp(p.Energy-30, 0, 100)
		p.Happiness = game.Clamp(p.Happiness+25, 0, 100)
		p.Skills.Add(game.SkillFetch, 15)
		p.Experience += 10
		out = Outcome{Applied: true, Animation: game.AnimFetching, AnimationDelay: 4 * time.Second}

	case ActionGroom:
		p.Happiness = game.Clamp(p.Happiness+20, 0, 100)
		p.Experience += 4
		out = Outcome{Applied: true, Animation: game.AnimGrooming, AnimationDelay: 3 * time.Second}

	case ActionSleep:
		p.Energy = game.Clamp(p.Energy+40, 0, 100)
		p.Happiness = game.Clamp(p.Happiness+10, 0, 100)
		out = Outcome{Applied: true, Animation: game.AnimSleeping, AnimationDelay: 5 * time.Second}

	case ActionBathe:
		p.Happiness = game.Clamp(p.Happiness+12, 0, 100)
		p.Experience += 6
		out = Outcome{Applied: true, Animation: game.AnimBathing, AnimationDelay: 3500 * time.Millisecond}

	default:
		return Outcome{}
	}

	levelUp(p)

	out.PlayerXP = playerXPFor(action)
	save.PlayerData.GainXP(out.PlayerXP)
	save.GameStats.PuppyInteractions++
	return out
}

// playerXPFor is the per-action experience the player earns.
func playerXPFor(a Action) int {
	if a == ActionTrain || a == ActionFetch {
		return 10
	}
	return 6
}

// levelUp promotes the puppy when its experience crosses the level
// threshold, advancing age and the one-directional age stage.
func levelUp(p *game.Puppy) {
	if p.Experience < p.XPToNextLevel() {
		return
	}
	p.Level++
	p.Experience = 0
	p.Age++
	switch {
	case p.Age >= 60 && p.AgeStage == game.StageYoung:
		p.AgeStage = game.StageAdult
	case p.Age >= 30 && p.AgeStage == game.StageBaby:
		p.AgeStage = game.StageYoung
	}
}
