package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the settings used for a fresh profile.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         true,
		MusicEnabled:         true,
		NotificationsEnabled: true,
		AutoSave:             true,
		Difficulty:           DifficultyEasy,
		Language:             "en",
	}
}
