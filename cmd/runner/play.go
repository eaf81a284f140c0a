package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagLogPath    string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Space/W/Up   - Jump (again in the air with the air-jump power-up)
  P            - Pause
  R/Enter      - Start or restart
  L            - Leaderboard
  N            - Set your name (before a run or after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Without --name the run is anonymous and no score is submitted.

Difficulty options:
  easy   - More lives, slower course, forgiving jumps
  normal - The default course
  hard   - Fewer lives, faster and denser course
  fixed  - No speed or difficulty progression

Examples:
  runner play --name alice
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --log runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard (3-30 chars)")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log simulation events at debug level")
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := loadRunnerConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger, closeLog, err := fileLogger(flagLogPath, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	rt.Player = flagName

	var client leaderboard.Client
	c, store, lbErr := openLeaderboard()
	if lbErr != nil {
		// The game still works without a leaderboard.
		fmt.Fprintf(os.Stderr, "Warning: leaderboard unavailable: %v\n", lbErr)
	} else {
		client = c
	}
	if store != nil {
		defer store.Close()
	}

	runErr := tui.Run(tui.Options{
		Runner:  runnerCfg,
		Runtime: rt,
		Client:  client,
		Logger:  logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
