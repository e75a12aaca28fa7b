package core

import "fmt"

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventLanded           EventKind = iota + 1 // Forward landing that scored
	EventExplorationBonus                      // Periodic altitude-crossing bonus
	EventLevelComplete                         // Home planet reached
	EventGameOver                              // Run ended
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventExplorationBonus:
		return "exploration_bonus"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for collaborators (audio, logging) that
// react to gameplay without inspecting state diffs.
type Event struct {
	Kind   EventKind
	Points int    // Points awarded by this event, if any
	Index  int    // Planet index for landings
	Combo  int    // Combo value after a landing
	Level  int    // Level the event belongs to
	Reason string // Game-over reason
}

// String formats the event for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventLanded:
		return fmt.Sprintf("landed on #%d (+%d, x%d)", e.Index, e.Points, e.Combo)
	case EventExplorationBonus:
		return fmt.Sprintf("exploration bonus +%d", e.Points)
	case EventLevelComplete:
		return fmt.Sprintf("level %d complete (+%d)", e.Level, e.Points)
	case EventGameOver:
		return "game over: " + e.Reason
	default:
		return e.Kind.String()
	}
}
