// Package config provides YAML-based player settings with embedded
// defaults and difficulty presets for the mini-games.
package config

// Settings are the player-facing preferences persisted alongside the save.
type Settings struct {
	SoundEnabled         bool             `yaml:"sound_enabled" json:"soundEnabled"`
	MusicEnabled         bool             `yaml:"music_enabled" json:"musicEnabled"`
	NotificationsEnabled bool             `yaml:"notifications_enabled" json:"notificationsEnabled"`
	AutoSave             bool             `yaml:"auto_save" json:"autoSave"`
	Difficulty           DifficultyPreset `yaml:"difficulty" json:"difficulty"`
	Language             string           `yaml:"language" json:"language"`
}

// DifficultyPreset is a named difficulty level for the mini-games.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns the selectable difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// TriviaCeiling maps a preset to the highest trivia question difficulty
// the session will draw.
func TriviaCeiling(preset DifficultyPreset) int {
	switch preset {
	case DifficultyMedium:
		return 3
	case DifficultyHard:
		return 5
	default:
		return 2
	}
}

// Valid reports whether the preset is one of the known levels.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Normalize fills zero-valued fields with defaults so settings loaded
// from older files stay usable.
func (s *Settings) Normalize() {
	if !s.Difficulty.Valid() {
		s.Difficulty = DifficultyEasy
	}
	if s.Language == "" {
		s.Language = "en"
	}
}
