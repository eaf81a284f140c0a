// runner is a winter side-scrolling runner for the terminal.
//
// Usage:
//
//	runner play             - Play in this terminal
//	runner serve            - Start the SSH server (and optional HTTP leaderboard)
//	runner scores           - Show the leaderboard
//	runner config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible runs
//	--db <path>            - Set database path (default: ~/.runner/scores.db)
//	--leaderboard <url>    - Use a remote leaderboard server instead of the database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagLeaderboard string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Winter Runner - an endless runner in your terminal",
	Long: `Winter Runner is a side-scrolling arcade runner: jump over pines,
boulders and snowballs, dodge icicles and meteors, and collect power-ups.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  config   - Print the default configuration

Examples:
  runner play --name alice
  runner play --difficulty hard
  runner serve --ssh :2222 --http :8080
  runner scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Remote leaderboard URL (e.g. http://host:8080)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
