package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/leaderboard"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// topScoresOnGameOver is how many leaderboard rows the game-over screen lists.
const topScoresOnGameOver = 5

// outcomeMsg wraps a finished background submission.
type outcomeMsg leaderboard.Outcome

// waitForOutcome blocks on the reporter and hands the next outcome to Update.
// It returns nil once the session context is done.
func waitForOutcome(ctx context.Context, r *leaderboard.Reporter) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case o := <-r.Outcomes():
			return outcomeMsg(o)
		case <-ctx.Done():
			return nil
		}
	}
}

// Options describes one game session.
type Options struct {
	Runner config.RunnerConfig

	// Runtime.Player is validated; an invalid or empty name plays
	// anonymously and never submits.
	Runtime core.RuntimeConfig

	// Client may be nil, in which case no leaderboard is shown or written.
	Client leaderboard.Client

	Logger *log.Logger

	// ScreenshotDir defaults to ~/.runner/screenshots.
	ScreenshotDir string

	// Context bounds the session; background listeners stop when it is done.
	// Defaults to context.Background.
	Context context.Context
}

// Model is the Bubble Tea model that drives one runner simulation.
type Model struct {
	ctx           context.Context
	cancel        context.CancelFunc
	sim           *runner.Sim
	clock         *runner.FrameClock
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          *KeyMapper
	inputFrame    core.InputFrame
	snapshot      runner.Snapshot
	reporter      *leaderboard.Reporter
	board         ScoreboardModel
	showBoard     bool
	naming        bool
	nameInput     textinput.Model
	nameErr       string
	paused        bool
	quitting      bool
	log           *log.Logger
	screenshotDir string
}

// NewModel wires a simulation, its score reporter and the leaderboard view.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := cfg.Player
	if player != "" {
		name, err := leaderboard.ValidateName(player)
		if err != nil {
			logger.Warn("playing anonymously", "name", player, "err", err)
			name = ""
		}
		player = name
	}
	cfg.Player = player

	simOpts := []runner.Option{
		runner.WithSeed(cfg.Seed),
		runner.WithPlayer(player),
		runner.WithLogger(logger),
	}
	var reporter *leaderboard.Reporter
	if opts.Client != nil {
		reporter = leaderboard.NewReporter(opts.Client, leaderboard.WithReporterLogger(logger))
		simOpts = append(simOpts, runner.WithSink(reporter))
	}

	sim, err := runner.New(opts.Runner, simOpts...)
	if err != nil {
		return Model{}, fmt.Errorf("create simulation: %w", err)
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".runner", "screenshots")
		}
	}

	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	return Model{
		ctx:           ctx,
		cancel:        cancel,
		sim:           sim,
		clock:         runner.NewFrameClock(opts.Runner.Physics.MaxDeltaMs),
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keys:          NewKeyMapper(),
		inputFrame:    core.NewInputFrame(),
		snapshot:      sim.Snapshot(),
		reporter:      reporter,
		board:         NewScoreboardModel(opts.Client, player, cfg.ScreenW, cfg.ScreenH),
		nameInput:     newNameInput(),
		log:           logger,
		screenshotDir: dir,
	}, nil
}

// Init starts the frame loop, the first leaderboard fetch and the outcome listener.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate), waitForOutcome(m.ctx, m.reporter)}
	if m.board.client != nil {
		cmds = append(cmds, m.board.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.board, cmd = m.board.update(msg)
		return m, cmd

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case outcomeMsg:
		cmds := []tea.Cmd{waitForOutcome(m.ctx, m.reporter)}
		if msg.Err == nil {
			cmds = append(cmds, m.board.refresh())
		}
		return m, tea.Batch(cmds...)

	case ScoresLoadedMsg:
		var cmd tea.Cmd
		m.board, cmd = m.board.update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		return m.handleNameKey(msg)
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	if m.showBoard {
		var cmd tea.Cmd
		m.board, cmd = m.board.update(msg)
		if m.board.goingBack {
			m.board.goingBack = false
			m.showBoard = false
		}
		return m, cmd
	}

	if msg.String() == "n" && !m.snapshot.Run.Running {
		return m.openNamePrompt()
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionPause:
		if m.snapshot.Run.Running {
			m.paused = !m.paused
			m.clock.Reset()
		}
		return m, nil
	case core.ActionScores:
		if m.snapshot.Run.Running {
			m.paused = true
		}
		m.showBoard = true
		return m, m.board.refresh()
	}

	if !m.paused {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.clock.Tick(now)
	if !m.paused && !m.showBoard {
		m.snapshot = m.sim.Step(delta, m.inputFrame)
		if runner.HasEvent(m.snapshot.Events, runner.EventGameOver) {
			m.log.Info("game over", "player", m.snapshot.Player, "score", m.snapshot.Run.Score)
		}
	}
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	runner.Render(m.snapshot, m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	filename := fmt.Sprintf("runner_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View()
	}
	if m.naming {
		return m.nameView()
	}

	runner.Render(m.snapshot, m.screen)
	switch {
	case m.paused:
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED  P to resume ", core.ColorHUD)
	case m.snapshot.GameOver():
		m.drawTopScores()
	}
	if !m.snapshot.Run.Running && m.config.Player == "" && m.board.client != nil {
		m.screen.DrawTextCentered(m.screen.Height()-1, " N: enter a name to join the leaderboard ", core.ColorDim)
	}
	return RenderScreen(m.screen)
}

// drawTopScores lists the leading entries under the game-over banner.
func (m Model) drawTopScores() {
	entries := m.board.Entries()
	if len(entries) == 0 {
		return
	}
	row := (m.screen.Height()-5)/2 + 6
	m.screen.DrawTextCentered(row, "Top runners  (L for all)", core.ColorDim)
	for i, e := range entries[:min(len(entries), topScoresOnGameOver)] {
		line := fmt.Sprintf("%d. %-16s %6d", i+1, e.Name, e.Score)
		m.screen.DrawTextCentered(row+1+i, line, core.ColorHUD)
	}
}

// quit stops the outcome listener and ends the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// Snapshot returns the latest simulation snapshot.
func (m Model) Snapshot() runner.Snapshot {
	return m.snapshot
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Close stops the outcome listener and waits for in-flight score submissions.
func (m Model) Close() {
	m.cancel()
	if m.reporter != nil {
		m.reporter.Wait()
	}
}

// Run starts the Bubble Tea program for one local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
