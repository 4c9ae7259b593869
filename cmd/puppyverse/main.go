// puppyverse is a terminal puppy-care game for kids.
//
// Usage:
//
//	puppyverse play              - Start the game
//	puppyverse quizzes           - List available quiz activities
//	puppyverse status            - Show the current save
//	puppyverse reset             - Delete the current save
//	puppyverse serve             - Start SSH server for remote play
//	puppyverse api               - Start the REST sync API
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.puppyverse/puppyverse.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import quiz sessions to register them
	_ "github.com/MontLac-Coders/kataya-puppyverse/internal/games/trivia"
	_ "github.com/MontLac-Coders/kataya-puppyverse/internal/games/vocab"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puppyverse",
	Short: "Puppyverse - raise pixel puppies in your terminal",
	Long: `Puppyverse is a terminal game where kids adopt and care for puppies,
answer trivia, and learn Spanish words to earn coins and experience.

Available commands:
  play     - Start the game
  quizzes  - List quiz activities
  status   - Show the current save
  reset    - Delete the current save
  serve    - Start SSH server for remote play
  api      - Start the REST sync API

Examples:
  puppyverse play
  puppyverse status
  puppyverse serve --ssh :2222
  puppyverse api --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puppyverse/puppyverse.db", "Path to save database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizzesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}
