package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump (edge-triggered, already debounced)
	ActionRestart        // R, Enter - start/restart when the run is not running
	ActionPause          // P - pause/unpause
	ActionScores         // L - open the leaderboard
	ActionBack           // B, Escape - leave the current view
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input edges collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf builds a frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
