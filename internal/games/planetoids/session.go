package planetoids

import (
	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/core"
)

// Session owns all state of one player's journey. It is single-threaded:
// the platform calls Tick from its loop and reads Snapshot between ticks.
//
// Lifecycle: Idle -> Reset -> Running -> GameOver -> Reset -> Running ...
// The high score survives resets for the lifetime of the Session.
type Session struct {
	cfg config.PlanetoidsConfig
	gen *Generator

	phase  Phase
	reason Reason

	// planets is replaced wholesale on reset and level change; player indices
	// into it are reset in the same step.
	planets []Planet
	player  Player

	score       int
	highScore   int
	level       int
	cameraY     float64
	scrollSpeed float64

	planetsVisited int // Crossings since the last exploration bonus
	totalExplored  int // Crossings over the whole run
	boostTimer     int

	clock float64 // Simulated seconds since reset
	tick  uint64

	events []core.Event
}

// NewSession creates an idle session whose level generator is seeded once
// with seed.
func NewSession(cfg config.PlanetoidsConfig, seed int64) *Session {
	return &Session{
		cfg:   cfg,
		gen:   NewGenerator(seed, cfg.World),
		phase: PhaseIdle,
		level: 1,
	}
}

// Reset starts a new run at level 1. Everything except the high score and
// the random stream returns to its initial value.
func (s *Session) Reset() {
	s.level = 1
	s.planets = s.gen.Generate(s.level)
	s.player = s.startingPlayer()

	s.score = 0
	s.cameraY = 0
	s.scrollSpeed = s.cfg.Camera.ScrollSpeed(s.level)
	s.planetsVisited = 0
	s.totalExplored = 0
	s.boostTimer = 0
	s.clock = 0
	s.tick = 0
	s.events = nil

	s.phase = PhaseRunning
	s.reason = ReasonNone
}

// RequestRestart resets the session if it is not running. Returns whether
// the reset happened.
func (s *Session) RequestRestart() bool {
	if s.phase == PhaseRunning {
		return false
	}
	s.Reset()
	return true
}

func (s *Session) startingPlayer() Player {
	return Player{
		Pos:      core.Vec3{X: 0, Y: s.cfg.World.StartAltitude, Z: 0},
		OnGround: true,
	}
}

// Tick advances the simulation by one fixed step of dt seconds using the
// held-button snapshot in. It returns the events raised during the step.
// Ticks outside the running phase do nothing.
func (s *Session) Tick(in Controls, dt float64) []core.Event {
	if s.phase != PhaseRunning {
		return nil
	}
	s.events = nil
	s.tick++
	s.clock += dt

	s.tickCombo()
	if s.boostTimer > 0 {
		s.boostTimer--
	}
	s.scrollSpeed = s.cfg.Camera.ScrollSpeed(s.level)

	phys := s.cfg.Physics
	moveKinematics(&s.player, s.planets, phys, in)
	if idx := resolveLanding(&s.player, s.planets, phys); idx >= 0 {
		s.scoreLanding(idx)
	}

	s.advanceCamera()

	if reason := s.gameOverReason(dt); reason != ReasonNone {
		s.endRun(reason)
	} else if s.player.LastPlanetIndex == len(s.planets)-1 {
		s.advanceToNextLevel()
	}

	for i := range s.planets {
		s.planets[i].Rotation += s.cfg.World.RotationStep
	}
	return s.events
}

// advanceCamera scrolls by the level speed, counts the crossing, then pulls
// the camera up if the player got too far ahead. Catch-up jumps do not count
// crossings.
func (s *Session) advanceCamera() {
	from := s.cameraY
	s.cameraY += s.scrollSpeed
	s.countCrossing(from, s.cameraY)

	if lead := s.player.Pos.Y - s.cfg.Camera.LeadDistance; lead > s.cameraY {
		s.cameraY = lead
	}
}

// gameOverReason evaluates the terminal predicates in priority order.
// Drift time is accumulated here, so it must run once per tick.
func (s *Session) gameOverReason(dt float64) Reason {
	p := &s.player

	if p.OnGround {
		p.TimeInSpace = 0
	} else {
		p.TimeInSpace += dt
		if p.TimeInSpace > s.cfg.Physics.DriftTimeout {
			p.DriftingIntoSpace = true
			return ReasonDriftedIntoSpace
		}
	}

	if p.Pos.Y < s.cameraY-s.cfg.Camera.FallMargin {
		return ReasonFellBehindCamera
	}

	if p.OnGround && s.planets[p.GroundIndex].Pos.Y < s.cameraY {
		return ReasonLastPlanetBehindCamera
	}
	return ReasonNone
}

// advanceToNextLevel awards the completion bonus and either ends the journey
// or swaps in the next level's planets. Score, high score and total explored
// carry over; the combo gets a fresh window.
func (s *Session) advanceToNextLevel() {
	bonus := s.cfg.Scoring.LevelCompletionBonus * s.level
	s.addPoints(bonus)
	s.emit(core.Event{
		Kind:   core.EventLevelComplete,
		Points: bonus,
		Level:  s.level,
	})

	s.level++
	if s.level > s.cfg.World.MaxLevels {
		s.endRun(ReasonJourneyComplete)
		return
	}

	s.planets = s.gen.Generate(s.level)

	combo, jumpHeld := s.player.Combo, s.player.JumpHeld
	s.player = s.startingPlayer()
	s.player.Combo = combo
	s.player.JumpHeld = jumpHeld
	s.player.ComboTimer = s.cfg.Scoring.ComboWindow

	s.planetsVisited = 0
	s.boostTimer = s.cfg.Scoring.LevelBoostTicks
	s.cameraY = 0
	s.scrollSpeed = s.cfg.Camera.ScrollSpeed(s.level)
}

func (s *Session) endRun(reason Reason) {
	s.phase = PhaseGameOver
	s.reason = reason
	s.commitHighScore()
	s.emit(core.Event{
		Kind:   core.EventGameOver,
		Level:  s.level,
		Reason: reason.String(),
	})
}

func (s *Session) emit(ev core.Event) {
	s.events = append(s.events, ev)
}

// Phase returns the current top-level state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Reason returns why the last run ended, or ReasonNone.
func (s *Session) Reason() Reason {
	return s.reason
}

// Running reports whether ticks currently advance the simulation.
func (s *Session) Running() bool {
	return s.phase == PhaseRunning
}

// Score returns the current run's score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score reached during this session's lifetime.
func (s *Session) HighScore() int {
	return s.highScore
}

// Level returns the current level, which exceeds the level count once the
// journey is complete.
func (s *Session) Level() int {
	return s.level
}

// PlanetVisible reports whether planet i lies in the band around the camera
// worth drawing.
func (s *Session) PlanetVisible(i int) bool {
	if i < 0 || i >= len(s.planets) {
		return false
	}
	return visibleAt(s.planets[i].Pos.Y, s.cameraY)
}
