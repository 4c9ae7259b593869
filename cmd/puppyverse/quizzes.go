package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/registry"
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List quiz activities",
	Long:  `Shows the quiz activities available from the hub.`,
	Run:   runQuizzes,
}

func runQuizzes(cmd *cobra.Command, args []string) {
	sessions := registry.List()

	if len(sessions) == 0 {
		fmt.Println("No quizzes available.")
		return
	}

	fmt.Println("Available quizzes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sessions {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range sessions {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'puppyverse play' and open Quiz Corner to play them.")
}
