package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/storage"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the current save",
	Long: `Deletes the saved game and settings so the next 'puppyverse play'
starts fresh.

Examples:
  puppyverse reset
  puppyverse reset --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	has, err := store.HasSave()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking save: %v\n", err)
		os.Exit(1)
	}
	if !has {
		fmt.Println("No save to delete.")
		return
	}

	if !flagResetYes {
		fmt.Print("Delete the saved game? This cannot be undone. [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Kept the save.")
			return
		}
	}

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting save: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Save deleted.")
}
