// Package content loads the question and lesson pools the mini-games draw
// from. Defaults ship embedded in the binary; a custom YAML file or the
// user's config directory can override them.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/trivia.yaml
var defaultTriviaYAML []byte

//go:embed defaults/spanish.yaml
var defaultSpanishYAML []byte

// TriviaQuestion is one four-choice question.
type TriviaQuestion struct {
	ID         string   `yaml:"id" json:"id"`
	Question   string   `yaml:"question" json:"question"`
	Answers    []string `yaml:"answers" json:"answers"`
	Correct    int      `yaml:"correct" json:"correct"`
	Category   string   `yaml:"category" json:"category"`
	Difficulty int      `yaml:"difficulty" json:"difficulty"`
	Note       string   `yaml:"note,omitempty" json:"note,omitempty"`
}

// Lesson is one Spanish vocabulary item.
type Lesson struct {
	ID            string `yaml:"id" json:"id"`
	Spanish       string `yaml:"spanish" json:"spanishWord"`
	English       string `yaml:"english" json:"englishWord"`
	Category      string `yaml:"category" json:"category"`
	Emoji         string `yaml:"emoji" json:"emoji"`
	Pronunciation string `yaml:"pronunciation,omitempty" json:"pronunciation,omitempty"`
	Difficulty    int    `yaml:"difficulty" json:"difficulty"`
	Example       string `yaml:"example,omitempty" json:"exampleSentence,omitempty"`
	Translation   string `yaml:"translation,omitempty" json:"exampleTranslation,omitempty"`
}

type triviaFile struct {
	Questions []TriviaQuestion `yaml:"questions"`
}

type spanishFile struct {
	Lessons []Lesson `yaml:"lessons"`
}

// TriviaCategories lists the trivia categories in menu order.
func TriviaCategories() []string {
	return []string{
		"animals", "colors", "numbers", "everyday", "food",
		"science", "geography", "sports", "music", "space",
	}
}

// SpanishCategories lists the vocabulary categories in menu order.
func SpanishCategories() []string {
	return []string{
		"animals", "colors", "numbers", "family",
		"food", "clothes", "home", "school",
	}
}

// LoadTrivia loads the trivia pool.
// Search order: customPath -> ~/.puppyverse/content/trivia.yaml -> embedded default.
func LoadTrivia(customPath string) ([]TriviaQuestion, error) {
	var f triviaFile

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("content: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("content: cannot parse %s: %w", customPath, err)
		}
		return f.Questions, nil
	}

	if userPath := userContentPath("trivia.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &f); err == nil {
				return f.Questions, nil
			}
		}
	}

	if err := yaml.Unmarshal(defaultTriviaYAML, &f); err != nil {
		return nil, fmt.Errorf("content: embedded trivia pool is invalid: %w", err)
	}
	return f.Questions, nil
}

// LoadSpanish loads the vocabulary pool.
// Search order: customPath -> ~/.puppyverse/content/spanish.yaml -> embedded default.
func LoadSpanish(customPath string) ([]Lesson, error) {
	var f spanishFile

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("content: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("content: cannot parse %s: %w", customPath, err)
		}
		return f.Lessons, nil
	}

	if userPath := userContentPath("spanish.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &f); err == nil {
				return f.Lessons, nil
			}
		}
	}

	if err := yaml.Unmarshal(defaultSpanishYAML, &f); err != nil {
		return nil, fmt.Errorf("content: embedded vocabulary pool is invalid: %w", err)
	}
	return f.Lessons, nil
}

// userContentPath returns the user override path, or empty if home is unavailable.
func userContentPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puppyverse", "content", filename)
}
