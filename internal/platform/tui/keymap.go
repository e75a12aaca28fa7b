package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-planetoids/internal/core"
)

// DefaultHoldWindow is how long a key press keeps its action held without
// a repeat.
const DefaultHoldWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "a", "h", "left":
		return core.ActionLeft
	case "d", "l", "right":
		return core.ActionRight
	case " ", "space", "w", "k", "up":
		return core.ActionJump
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "tab":
		return core.ActionScoreboard
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// HoldTracker turns key presses into held state. Terminals report presses
// and auto-repeats but never releases, so a press holds its action for a
// window that each repeat extends.
type HoldTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press holds a held-type action until now+window. Steering directions are
// exclusive: the latest one wins.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.IsHeld() {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// Apply sets every action still held at now on the frame and forgets the
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Held reports whether an action is held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
