package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.runner/host_key.
	HostKeyPath string

	// DBPath is the SQLite leaderboard used when LeaderboardURL is empty.
	DBPath string

	// LeaderboardURL points sessions at a remote leaderboard server instead.
	LeaderboardURL string

	// Runner is the simulation config every session starts from.
	Runner config.RunnerConfig

	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.runner/scores.db",
		Runner:      config.DefaultRunnerConfig(),
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one runner session per SSH connection.
// The SSH username is the player name.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	client leaderboard.Client
	logger *log.Logger

	// sessions counts models whose submissions may still be running.
	sessions sync.WaitGroup
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "runner-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	if cfg.LeaderboardURL != "" {
		client, err := leaderboard.NewHTTPClient(cfg.LeaderboardURL)
		if err != nil {
			return nil, err
		}
		srv.client = client
	} else {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			// Sessions still play; they just have no leaderboard.
			logger.Warn("could not open scores database", "error", err)
		} else {
			srv.store = store
			srv.client = leaderboard.NewLocalClient(store)
		}
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".runner", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a runner model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model, err := NewModel(Options{
		Runner: s.config.Runner,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
			Player:   sshSession.User(),
		},
		Client:  s.client,
		Logger:  s.logger.With("user", sshSession.User()),
		Context: sshSession.Context(),
	})
	if err != nil {
		s.logger.Error("cannot start session", "user", sshSession.User(), "error", err)
		return nil, nil
	}
	// Screenshots would land on the server's disk.
	model.screenshotDir = ""

	s.sessions.Add(1)
	go func() {
		defer s.sessions.Done()
		<-sshSession.Context().Done()
		model.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// Client returns the leaderboard the sessions use, or nil when none is available.
func (s *SSHServer) Client() leaderboard.Client {
	return s.client
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server, then waits for every session's
// score submissions before closing the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if err != nil {
		// Force the remaining connections closed so their sessions end.
		s.server.Close()
	}
	s.sessions.Wait()
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
