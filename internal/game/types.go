// Package game defines the domain types for the puppyverse: the player,
// their puppies, inventory, zones, and lifetime statistics. Types here are
// pure data with derived helpers; all mutation goes through the engines.
package game

import "time"

// Personality affects only presentation (which animation a puppy plays).
type Personality string

const (
	PersonalityEnergetic Personality = "energetic"
	PersonalityCalm      Personality = "calm"
)

// Mood is derived from happiness and never stored independently.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodContent   Mood = "content"
	MoodSad       Mood = "sad"
	MoodMiserable Mood = "miserable"
)

// MoodFor maps a happiness value to its mood band.
func MoodFor(happiness float64) Mood {
	switch {
	case happiness >= 80:
		return MoodHappy
	case happiness >= 60:
		return MoodContent
	case happiness >= 40:
		return MoodSad
	default:
		return MoodMiserable
	}
}

// AgeStage progresses baby -> young -> adult and never regresses.
type AgeStage string

const (
	StageBaby  AgeStage = "baby"
	StageYoung AgeStage = "young"
	StageAdult AgeStage = "adult"
)

// Animation is a transient display hint. It is never persisted and carries
// no game meaning; the presentation layer reverts it to idle on a timer.
type Animation string

const (
	AnimIdle     Animation = "idle"
	AnimEating   Animation = "eating"
	AnimJumping  Animation = "jumping"
	AnimWagging  Animation = "wagging"
	AnimCuddling Animation = "cuddling"
	AnimTraining Animation = "training"
	AnimFetching Animation = "fetching"
	AnimGrooming Animation = "grooming"
	AnimSleeping Animation = "sleeping"
	AnimBathing  Animation = "bathing"
)

// Skill identifies one of the six trainable skills.
type Skill string

const (
	SkillFetch    Skill = "fetch"
	SkillSit      Skill = "sit"
	SkillRollOver Skill = "rollOver"
	SkillDance    Skill = "dance"
	SkillSpeak    Skill = "speak"
	SkillStay     Skill = "stay"
)

// Skills returns the fixed skill keys in a stable order.
func Skills() []Skill {
	return []Skill{SkillFetch, SkillSit, SkillRollOver, SkillDance, SkillSpeak, SkillStay}
}

// SkillSet holds per-skill proficiency, each bounded to [0,100].
type SkillSet struct {
	Fetch    int `json:"fetch"`
	Sit      int `json:"sit"`
	RollOver int `json:"rollOver"`
	Dance    int `json:"dance"`
	Speak    int `json:"speak"`
	Stay     int `json:"stay"`
}

// Get returns the proficiency for a skill key.
func (s *SkillSet) Get(k Skill) int {
	switch k {
	case SkillFetch:
		return s.Fetch
	case SkillSit:
		return s.Sit
	case SkillRollOver:
		return s.RollOver
	case SkillDance:
		return s.Dance
	case SkillSpeak:
		return s.Speak
	case SkillStay:
		return s.Stay
	}
	return 0
}

// Add raises a skill by delta, clamped to [0,100].
func (s *SkillSet) Add(k Skill, delta int) {
	v := ClampInt(s.Get(k)+delta, 0, 100)
	switch k {
	case SkillFetch:
		s.Fetch = v
	case SkillSit:
		s.Sit = v
	case SkillRollOver:
		s.RollOver = v
	case SkillDance:
		s.Dance = v
	case SkillSpeak:
		s.Speak = v
	case SkillStay:
		s.Stay = v
	}
}

// Puppy is one cared-for puppy. Bounded stats stay within [0,100];
// mood and animation are derived/transient and intentionally absent.
type Puppy struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Personality  Personality `json:"personality"`
	Happiness    float64     `json:"happiness"`
	Hunger       float64     `json:"hunger"`
	Energy       float64     `json:"energy"`
	Level        int         `json:"level"`
	Experience   int         `json:"experience"`
	AgeStage     AgeStage    `json:"ageStage"`
	Age          int         `json:"age"`
	Skills       SkillSet    `json:"skills"`
	Accessories  []string    `json:"accessories"`
	FavoriteToys []string    `json:"favoriteToys"`
	LastFed      *time.Time  `json:"lastFed"`
	LastPlayed   *time.Time  `json:"lastPlayed"`
}

// Mood derives the puppy's current mood from happiness.
func (p *Puppy) Mood() Mood {
	return MoodFor(p.Happiness)
}

// XPToNextLevel is the experience required for the puppy's next level.
func (p *Puppy) XPToNextLevel() int {
	return p.Level * 60
}

// ItemType categorizes inventory items.
type ItemType string

const (
	ItemFood     ItemType = "food"
	ItemToy      ItemType = "toy"
	ItemClothing ItemType = "clothing"
)

// Rarity grades inventory items.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
)

// InventoryItem is a stack of one item kind. Quantity never goes negative.
type InventoryItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
	Rarity   Rarity   `json:"rarity"`
}

// HasFood reports whether any food item with stock remains.
func HasFood(inv []InventoryItem) bool {
	for i := range inv {
		if inv[i].Type == ItemFood && inv[i].Quantity > 0 {
			return true
		}
	}
	return false
}

// ConsumeFood decrements the first stocked food item. Returns false if
// nothing could be consumed.
func ConsumeFood(inv []InventoryItem) bool {
	for i := range inv {
		if inv[i].Type == ItemFood && inv[i].Quantity > 0 {
			inv[i].Quantity--
			return true
		}
	}
	return false
}

// GameStats are lifetime counters. All fields only ever increase.
type GameStats struct {
	TriviaQuestionsAnswered int `json:"triviaQuestionsAnswered"`
	TriviaCorrectAnswers    int `json:"triviaCorrectAnswers"`
	SpanishWordsLearned     int `json:"spanishWordsLearned"`
	SpanishLessonsCompleted int `json:"spanishLessonsCompleted"`
	PuppyInteractions       int `json:"puppyInteractions"`
	PuppyFeedings           int `json:"puppyFeedings"`
	PuppyPlaySessions       int `json:"puppyPlaySessions"`
	TotalPlayTime           int `json:"totalPlayTime"`
	SessionsCompleted       int `json:"sessionsCompleted"`
}

// Add folds counter deltas into the stats.
func (g *GameStats) Add(delta GameStats) {
	g.TriviaQuestionsAnswered += delta.TriviaQuestionsAnswered
	g.TriviaCorrectAnswers += delta.TriviaCorrectAnswers
	g.SpanishWordsLearned += delta.SpanishWordsLearned
	g.SpanishLessonsCompleted += delta.SpanishLessonsCompleted
	g.PuppyInteractions += delta.PuppyInteractions
	g.PuppyFeedings += delta.PuppyFeedings
	g.PuppyPlaySessions += delta.PuppyPlaySessions
	g.TotalPlayTime += delta.TotalPlayTime
	g.SessionsCompleted += delta.SessionsCompleted
}

// Zone is a play area. Whether it is unlocked is derived from the player,
// never stored as its own mutable flag.
type Zone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnlockLevel int    `json:"unlockLevel"`
	Icon        string `json:"icon"`
}

// UnlockedFor reports whether the player can enter the zone, either by
// level or by an explicit unlock event.
func (z *Zone) UnlockedFor(p *Player) bool {
	if p.Level >= z.UnlockLevel {
		return true
	}
	for _, id := range p.UnlockedZones {
		if id == z.ID {
			return true
		}
	}
	return false
}

// Player is the single local player.
type Player struct {
	Name             string   `json:"name"`
	Level            int      `json:"level"`
	Coins            int      `json:"coins"`
	Experience       int      `json:"experience"`
	ExperienceToNext int      `json:"experienceToNext"`
	UnlockedZones    []string `json:"unlockedZones"`
}

// GainXP adds experience, clamped to ExperienceToNext.
func (p *Player) GainXP(n int) {
	p.Experience = ClampInt(p.Experience+n, 0, p.ExperienceToNext)
}

// GainCoins adds coins. Coins are unbounded above and floored at zero.
func (p *Player) GainCoins(n int) {
	p.Coins += n
	if p.Coins < 0 {
		p.Coins = 0
	}
}

// UnlockZone records an explicit zone unlock. Idempotent.
func (p *Player) UnlockZone(zoneID string) {
	for _, id := range p.UnlockedZones {
		if id == zoneID {
			return
		}
	}
	p.UnlockedZones = append(p.UnlockedZones, zoneID)
}

// SaveVersion is the current snapshot schema version.
const SaveVersion = "1.0.0"

// SaveData is the full serializable snapshot. The storage package owns
// reading and writing it; engines never touch storage directly.
type SaveData struct {
	PlayerData Player          `json:"playerData"`
	Puppies    []Puppy         `json:"puppies"`
	Inventory  []InventoryItem `json:"inventory"`
	GameStats  GameStats       `json:"gameStats"`
	Zones      []Zone          `json:"zones"`
	LastSaved  string          `json:"lastSaved"`
	Version    string          `json:"version"`
}

// Clone returns a deep copy of the snapshot. Hand clones to anything
// that outlives the current call, such as the autosave timer, so later
// mutations of the live save cannot reach them.
func (s *SaveData) Clone() *SaveData {
	c := *s
	c.PlayerData.UnlockedZones = append([]string(nil), s.PlayerData.UnlockedZones...)
	c.Inventory = append([]InventoryItem(nil), s.Inventory...)
	c.Zones = append([]Zone(nil), s.Zones...)
	c.Puppies = append([]Puppy(nil), s.Puppies...)
	for i := range c.Puppies {
		p := &c.Puppies[i]
		p.Accessories = append([]string(nil), p.Accessories...)
		p.FavoriteToys = append([]string(nil), p.FavoriteToys...)
		if p.LastFed != nil {
			t := *p.LastFed
			p.LastFed = &t
		}
		if p.LastPlayed != nil {
			t := *p.LastPlayed
			p.LastPlayed = &t
		}
	}
	return &c
}

// PuppyByID returns the puppy with the given ID, or nil.
func (s *SaveData) PuppyByID(id string) *Puppy {
	for i := range s.Puppies {
		if s.Puppies[i].ID == id {
			return &s.Puppies[i]
		}
	}
	return nil
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
