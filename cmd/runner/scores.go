package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the leaderboard: each player's best score, highest first.

Reads the local database, or the server given by --leaderboard.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --interactive
  runner scores --leaderboard http://localhost:8080
  runner scores --reset             # Delete all local scores`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scrollable leaderboard view")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete every score in the local database")
}

func runScores(_ *cobra.Command, _ []string) {
	client, store, err := openLeaderboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	if flagReset {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: --reset only works on the local database")
			os.Exit(1)
		}
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All scores deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(client, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := client.FetchTopScores(ctx, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Winter Runner")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play --name <you>' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-30s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-30s  %-10s  %s\n", "----", "----", "-----", "----")
	for i, e := range entries {
		dateStr := "-"
		if !e.CreatedAt.IsZero() {
			dateStr = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-30s  %-10d  %s\n", i+1, e.Name, e.Score, dateStr)
	}

	if store == nil {
		return
	}
	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Players: %d  Best: %d  Average: %.0f\n", stats.Players, stats.HighScore, stats.AvgScore)
		if !stats.LastPlayed.IsZero() {
			fmt.Printf("Last run: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
		}
	}
}
