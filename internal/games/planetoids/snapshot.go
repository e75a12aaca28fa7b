package planetoids

import (
	"math"
	"slices"
)

// Pose is the part of the player a renderer needs.
type Pose struct {
	X, Y, Z  float64
	Rotation float64
	Bob      float64 // Idle bobbing offset, zero while airborne
	OnGround bool
}

// Snapshot is the per-tick render boundary. It is a value copy: mutating it
// has no effect on the session.
type Snapshot struct {
	Tick   uint64
	Clock  float64
	Phase  Phase
	Reason Reason

	Player  Pose
	CameraY float64
	Planets []Planet

	Score             int
	HighScore         int
	Level             int
	MaxLevels         int
	Combo             int
	PlanetsUntilBonus int
	TotalExplored     int
	BoostTimer        int
	ScrollSpeed       float64

	Running         bool
	Drifting        bool
	JourneyComplete bool
}

// Snapshot captures the session state exposed to renderers and tests.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	pose := Pose{
		X:        p.Pos.X,
		Y:        p.Pos.Y,
		Z:        p.Pos.Z,
		Rotation: p.Rotation,
		OnGround: p.OnGround,
	}
	if p.OnGround {
		pose.Bob = math.Sin(s.clock*6) * 2
	}

	return Snapshot{
		Tick:   s.tick,
		Clock:  s.clock,
		Phase:  s.phase,
		Reason: s.reason,

		Player:  pose,
		CameraY: s.cameraY,
		Planets: slices.Clone(s.planets),

		Score:             s.score,
		HighScore:         s.highScore,
		Level:             s.level,
		MaxLevels:         s.cfg.World.MaxLevels,
		Combo:             p.Combo,
		PlanetsUntilBonus: s.cfg.Scoring.PlanetsForBonus - s.planetsVisited,
		TotalExplored:     s.totalExplored,
		BoostTimer:        s.boostTimer,
		ScrollSpeed:       s.scrollSpeed,

		Running:         s.phase == PhaseRunning,
		Drifting:        p.DriftingIntoSpace,
		JourneyComplete: s.level > s.cfg.World.MaxLevels,
	}
}
