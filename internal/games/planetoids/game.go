// Package planetoids implements Planetoid Hop, a vertically scrolling
// platform jumper. The Prince hops upward across randomly generated
// planetoids while the camera climbs at a per-level speed; falling behind
// it, or drifting in empty space for too long, ends the journey.
//
// The simulation lives in Session and knows nothing about terminals.
// Game adapts it to the registry.Game interface used by the platform.
package planetoids

import (
	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/core"
	"github.com/vovakirdan/tui-planetoids/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "planetoids"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path resolved on the first Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on load. Unknown names
// clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the effective configuration from the CLI settings.
func LoadConfig() (config.PlanetoidsConfig, error) {
	cfg, err := config.LoadPlanetoids(configPath)
	if err != nil {
		return config.PlanetoidsConfig{}, err
	}
	config.ApplyPlanetoidsPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game adapts a Session to the platform. It adds pause and restart handling
// on top of the simulation.
type Game struct {
	cfg       config.PlanetoidsConfig
	hasConfig bool
	session   *Session
	paused    bool
}

// New creates a game that resolves its configuration from the CLI settings
// on the first Reset, falling back to defaults if it cannot be loaded.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.PlanetoidsConfig) *Game {
	return &Game{cfg: cfg, hasConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Planetoid Hop"
}

// Reset starts a new run. The first call creates the session with the
// runtime seed; later calls keep drawing from the same random stream.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.session == nil {
		if !g.hasConfig {
			cfg, err := LoadConfig()
			if err != nil {
				cfg = config.DefaultPlanetoidsConfig()
				config.ApplyPlanetoidsPreset(&cfg, difficultyPreset)
			}
			g.cfg, g.hasConfig = cfg, true
		}
		g.session = NewSession(g.cfg, runtime.Seed)
	}
	g.session.Reset()
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.RequestRestart() {
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if !g.session.Running() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.session.Tick(Controls{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}, g.cfg.Physics.TickSeconds)

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	s := g.session
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		Explored:  s.totalExplored,
		Ticks:     s.tick,
		GameOver:  s.phase == PhaseGameOver,
		Outcome:   s.reason.String(),
		Paused:    g.paused,
	}
}

// Snapshot returns the session snapshot, or a zero snapshot before Reset.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	return g.session.Snapshot()
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
