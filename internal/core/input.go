package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, H, Left arrow - held: steer left
	ActionRight             // D, L, Right arrow - held: steer right
	ActionJump              // Space, W, Up - held: jump (fires on the rising edge)
	ActionPause             // P - toggle pause
	ActionRestart           // R - restart after game over
	ActionScoreboard        // Tab - toggle the run scoreboard
	ActionBack              // Esc, B - leave the scoreboard
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action describes a key that stays down across
// ticks (steering, jump) rather than a one-shot command.
func (a Action) IsHeld() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}

// InputFrame is the input snapshot for one simulation tick. Held actions are
// present on every tick their key is down; one-shot actions appear once.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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

// Merge copies every active action of other into this frame.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.Actions {
		if on {
			f.Set(a)
		}
	}
}
