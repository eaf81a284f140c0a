package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/leaderboard"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHTTPAddr        string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeConfig     string
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own run; the SSH username is the player name,
so "ssh alice@host" submits scores as alice. Names that are not valid
leaderboard names play anonymously. All sessions share one leaderboard.

With --http the same leaderboard is also served as JSON:
  GET  /api/scores?limit=N
  POST /api/scores   {"name": "...", "score": N}

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.runner/host_key

Examples:
  runner serve                           # Listen on :23234 with auto-generated key
  runner serve --ssh :2222 --http :8080  # SSH plus HTTP leaderboard
  runner serve --difficulty hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP leaderboard address (disabled when empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom runner config YAML")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})

	runnerCfg, err := loadRunnerConfig(flagServeConfig, flagServeDifficulty)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		DBPath:         flagDBPath,
		LeaderboardURL: flagLeaderboard,
		Runner:         runnerCfg,
		TickRate:       flagFPS,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("runner-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	var httpSrv *http.Server
	if flagHTTPAddr != "" {
		client := server.Client()
		if client == nil {
			logger.Warn("no leaderboard available, HTTP API disabled")
		} else {
			httpSrv = startHTTP(flagHTTPAddr, client, logger.WithPrefix("runner-http"))
		}
	}

	fmt.Printf("Starting runner SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh <name>@localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	serveErr := server.ListenAndServe()

	if httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(ctx); err != nil {
			logger.Error("http shutdown", "error", err)
		}
	}

	if serveErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", serveErr)
		os.Exit(1)
	}
}

// startHTTP serves the leaderboard API in the background.
func startHTTP(addr string, client leaderboard.Client, logger *log.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           leaderboard.NewHandler(client, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("starting HTTP leaderboard", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	return srv
}
