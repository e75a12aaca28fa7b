package planetoids

import "github.com/vovakirdan/tui-planetoids/internal/core"

// Kind selects how a planet is decorated. It has no physical meaning.
type Kind int

const (
	KindPlain Kind = iota
	KindRose
	KindFox
	KindKing
	KindHome
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindRose:
		return "rose"
	case KindFox:
		return "fox"
	case KindKing:
		return "king"
	case KindHome:
		return "home"
	default:
		return "unknown"
	}
}

// Planet is a landing platform. Pos.Y is its altitude.
type Planet struct {
	Pos      core.Vec3
	Width    float64
	Depth    float64
	Rotation float64 // Cosmetic spin phase
	Kind     Kind
}

// Player is the Prince's physical and per-level bookkeeping state.
type Player struct {
	Pos      core.Vec3
	VX, VY   float64
	OnGround bool
	JumpHeld bool // Jump button state on the previous tick, for edge detection

	JumpCount int
	Rotation  float64 // Facing lean in degrees: 45 left, -45 right

	// LastPlanetIndex is the furthest planet landed on in the current list.
	// It only grows within a level and resets with the list.
	LastPlanetIndex int
	// GroundIndex is the planet the player currently stands on.
	GroundIndex int

	PlanetsExplored int
	Combo           int
	ComboTimer      int

	TimeInSpace       float64 // Seconds continuously airborne
	DriftingIntoSpace bool
}

// Phase is the top-level session state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason explains a game over. Only meaningful in PhaseGameOver.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonDriftedIntoSpace
	ReasonFellBehindCamera
	ReasonLastPlanetBehindCamera
	ReasonJourneyComplete
)

// String returns the reason identifier stored with finished runs.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonDriftedIntoSpace:
		return "drifted_into_space"
	case ReasonFellBehindCamera:
		return "fell_behind_camera"
	case ReasonLastPlanetBehindCamera:
		return "last_planet_behind_camera"
	case ReasonJourneyComplete:
		return "journey_complete"
	default:
		return "unknown"
	}
}

// Message is the end-of-run line shown to the player.
func (r Reason) Message() string {
	switch r {
	case ReasonDriftedIntoSpace:
		return "The Prince drifted away into the stars..."
	case ReasonFellBehindCamera:
		return "The Prince fell behind the journey."
	case ReasonLastPlanetBehindCamera:
		return "Your planetoid slipped away beneath you."
	case ReasonJourneyComplete:
		return "Journey complete! The Prince found the way home."
	default:
		return ""
	}
}
