package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MontLac-Coders/kataya-puppyverse/internal/server"
	"github.com/MontLac-Coders/kataya-puppyverse/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST sync API",
	Long: `Start an HTTP server exposing the sync API: player profiles,
puppy state, zones, custom trivia questions, and Spanish lessons.

Examples:
  puppyverse api
  puppyverse api --addr :9090
  puppyverse api --db ./family.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	srv, err := server.New(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating API server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting puppyverse API on %s\n", flagAPIAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.Run(flagAPIAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
