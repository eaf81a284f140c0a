package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to runner actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "w", "up":
		return core.ActionJump, false
	case "r", "enter":
		return core.ActionRestart, false
	case "p":
		return core.ActionPause, false
	case "l":
		return core.ActionScores, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
