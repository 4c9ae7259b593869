package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current save",
	Long: `Prints a summary of the saved game: player progress, puppies,
and lifetime stats.

Examples:
  puppyverse status
  puppyverse status --db ./family.db`,
	Run: runStatus,
}

func runStatus(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	save, err := store.LoadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading save: %v\n", err)
		os.Exit(1)
	}
	if save == nil {
		fmt.Println("No save yet. Run 'puppyverse play' to start.")
		return
	}

	p := save.PlayerData
	fmt.Printf("Player: %s (level %d)\n", p.Name, p.Level)
	fmt.Printf("  Coins: %d    XP: %d/%d\n", p.Coins, p.Experience, p.ExperienceToNext)
	fmt.Printf("  Zones: %s\n", strings.Join(p.UnlockedZones, ", "))
	fmt.Println()

	fmt.Println("Puppies:")
	for i := range save.Puppies {
		pup := &save.Puppies[i]
		fmt.Printf("  %-10s %s, age %d, level %d\n", pup.Name, pup.AgeStage, pup.Age, pup.Level)
		fmt.Printf("             happiness %.0f  hunger %.0f  energy %.0f  (%s)\n",
			pup.Happiness, pup.Hunger, pup.Energy, pup.Mood())
	}
	fmt.Println()

	st := save.GameStats
	fmt.Println("Stats:")
	fmt.Printf("  Trivia answered:   %d (%d correct)\n", st.TriviaQuestionsAnswered, st.TriviaCorrectAnswers)
	fmt.Printf("  Spanish words:     %d learned, %d lessons\n", st.SpanishWordsLearned, st.SpanishLessonsCompleted)
	fmt.Printf("  Puppy care:        %d interactions, %d feedings, %d play sessions\n",
		st.PuppyInteractions, st.PuppyFeedings, st.PuppyPlaySessions)
	fmt.Println()

	when, err := store.LastSavedAt()
	if err == nil && !when.IsZero() {
		fmt.Printf("Last saved: %s\n", when.Local().Format("2006-01-02 15:04:05"))
	}
}
