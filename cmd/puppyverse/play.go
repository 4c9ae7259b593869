package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/platform/tui"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Open the puppy hub in your terminal.

Controls:
  Arrows/WASD - Move around menus
  Enter/Space - Select
  1-4         - Answer quiz questions
  S           - Save now
  B/Esc       - Go back
  Q/Ctrl+C    - Quit

The game saves automatically a few seconds after every change,
and once more on exit.

Examples:
  puppyverse play
  puppyverse play --seed 42
  puppyverse play --db ./family.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: puppyverse play needs an interactive terminal")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := tui.Run(store, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
