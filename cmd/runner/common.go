package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// openLeaderboard returns the remote client when --leaderboard is set and the
// local SQLite board otherwise. The returned store is nil for remote boards.
func openLeaderboard() (leaderboard.Client, *storage.Store, error) {
	if flagLeaderboard != "" {
		client, err := leaderboard.NewHTTPClient(flagLeaderboard)
		return client, nil, err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	return leaderboard.NewLocalClient(store), store, nil
}

// loadRunnerConfig loads the YAML config and applies a difficulty preset.
func loadRunnerConfig(path, difficulty string) (config.RunnerConfig, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", difficulty)
	}
	cfg, err := config.LoadRunner(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, nil
}

// fileLogger logs to path, or discards when path is empty.
// The TUI owns the terminal, so play never logs to stderr.
func fileLogger(path string, level log.Level) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
