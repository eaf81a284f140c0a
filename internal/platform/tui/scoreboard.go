package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

// Scoreboard layout constants
const (
	boardLimit   = 10
	fetchTimeout = 5 * time.Second
	nameColWidth = 20
)

// ScoresLoadedMsg carries the result of a leaderboard fetch.
type ScoresLoadedMsg struct {
	Entries []leaderboard.Entry
	Err     error
}

// fetchScoresCmd fetches the ranking off the UI goroutine.
func fetchScoresCmd(client leaderboard.Client, limit int) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return ScoresLoadedMsg{Err: leaderboard.ErrUnavailable}
		}
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		entries, err := client.FetchTopScores(ctx, limit)
		return ScoresLoadedMsg{Entries: entries, Err: err}
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "l"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the ranked leaderboard.
// Standalone it quits the program on back; embedded in the game it only
// records the request and lets the parent switch views.
type ScoreboardModel struct {
	client     leaderboard.Client
	entries    []leaderboard.Entry
	err        error
	loading    bool
	player     string
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard that starts loading on Init.
// player, when set, is highlighted in the table.
func NewScoreboardModel(client leaderboard.Client, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		client:  client,
		player:  player,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		loading: true,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: nameColWidth},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 14},
	}
	if m.width > 0 && m.width < 64 {
		columns[1].Width = max(m.width-40, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows copies the loaded entries into the table.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		name := e.Name
		if m.player != "" && strings.EqualFold(strings.TrimSpace(name), m.player) {
			name = "> " + name
		}
		date := "-"
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			name,
			fmt.Sprintf("%d", e.Score),
			date,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// refresh marks the board as loading and returns the fetch command.
func (m *ScoreboardModel) refresh() tea.Cmd {
	m.loading = true
	return fetchScoresCmd(m.client, boardLimit)
}

// exit ends a standalone program; embedded boards leave that to the parent.
func (m ScoreboardModel) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// Init starts the first fetch.
func (m ScoreboardModel) Init() tea.Cmd {
	return fetchScoresCmd(m.client, boardLimit)
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	return m, cmd
}

func (m ScoreboardModel) update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case ScoresLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
		}
		m.updateTableRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exit()

		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or a status message.
func (m ScoreboardModel) renderTableContent() string {
	msgStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loading && len(m.entries) == 0:
		return msgStyle.Render("Loading scores...")
	case m.err != nil && len(m.entries) == 0:
		return msgStyle.Render("Leaderboard unavailable.\nPress r to retry.")
	case len(m.entries) == 0:
		return msgStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")
	}
	return m.table.View()
}

// Entries returns the last successfully loaded ranking.
func (m ScoreboardModel) Entries() []leaderboard.Entry {
	return m.entries
}

// IsGoingBack returns true if the user asked to leave the scoreboard.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(client leaderboard.Client, width, height int) error {
	model := NewScoreboardModel(client, "", width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
