package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

const nameHint = "3-30 letters, digits, spaces, _ . -"

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "your name"
	ti.CharLimit = leaderboard.MaxNameLen
	ti.Width = leaderboard.MaxNameLen
	return ti
}

// openNamePrompt starts editing the player name. Only allowed between runs.
func (m Model) openNamePrompt() (tea.Model, tea.Cmd) {
	m.naming = true
	m.nameErr = ""
	m.nameInput.SetValue(m.config.Player)
	m.nameInput.CursorEnd()
	return m, m.nameInput.Focus()
}

// handleNameKey edits the name; enter commits a valid name, esc cancels.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()

	case tea.KeyEsc:
		m.naming = false
		m.nameInput.Blur()
		return m, nil

	case tea.KeyEnter:
		name, err := leaderboard.ValidateName(m.nameInput.Value())
		if err != nil {
			m.nameErr = nameHint
			return m, nil
		}
		m.sim.SetPlayer(name)
		m.config.Player = name
		m.board.player = name
		m.board.updateTableRows()
		m.naming = false
		m.nameInput.Blur()
		m.log.Info("player name set", "name", name)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// nameView renders the prompt in the middle of the terminal.
func (m Model) nameView() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("ENTER YOUR NAME")

	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("enter: save  esc: cancel")
	if m.nameErr != "" {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.nameErr)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.nameInput.View(), "", footer)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box.Render(content))
}
