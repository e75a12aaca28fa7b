// Package config provides YAML-based game configuration loading and
// difficulty presets for the planetoids game.
package config

// PlanetoidsConfig contains every tunable of the planetoid simulation.
type PlanetoidsConfig struct {
	Physics PlanetoidsPhysics `yaml:"physics"`
	World   PlanetoidsWorld   `yaml:"world"`
	Scoring PlanetoidsScoring `yaml:"scoring"`
	Camera  PlanetoidsCamera  `yaml:"camera"`
}

// PlanetoidsPhysics defines player movement and landing parameters.
type PlanetoidsPhysics struct {
	Gravity             float64 `yaml:"gravity"`
	AscentGravityFactor float64 `yaml:"ascent_gravity_factor"` // Gravity multiplier while vy > 0
	JumpForce           float64 `yaml:"jump_force"`
	MoveSpeed           float64 `yaml:"move_speed"`
	JumpBoost           float64 `yaml:"jump_boost"` // Horizontal multiplier applied at launch only
	WrapX               float64 `yaml:"wrap_x"`     // Horizontal wrap boundary (±)
	TickSeconds         float64 `yaml:"tick_seconds"`
	DriftTimeout        float64 `yaml:"drift_timeout"` // Seconds airborne before drifting away
	LateralAssistRate   float64 `yaml:"lateral_assist_rate"`
	LateralDeadzone     float64 `yaml:"lateral_deadzone"`
	AssistBelow         float64 `yaml:"assist_below"` // Planets within (y-below, y+above) steer z
	AssistAbove         float64 `yaml:"assist_above"`
	LandingMargin       float64 `yaml:"landing_margin"` // Added to half extents
	LandingBelow        float64 `yaml:"landing_below"`  // Vertical window below planet altitude
	LandingAbove        float64 `yaml:"landing_above"`  // Vertical window above planet altitude
}

// PlanetoidsWorld defines level generation parameters.
type PlanetoidsWorld struct {
	PlanetsPerLevel int     `yaml:"planets_per_level"`
	MaxLevels       int     `yaml:"max_levels"`
	StartAltitude   float64 `yaml:"start_altitude"`
	StartWidth      float64 `yaml:"start_width"`
	StartDepth      float64 `yaml:"start_depth"`
	FirstBand       float64 `yaml:"first_band"` // Altitude of the first generated band
	BandStep        float64 `yaml:"band_step"`
	BandLift        float64 `yaml:"band_lift"` // Extra altitude per level-equivalent passed
	SpreadX         float64 `yaml:"spread_x"`
	RangeZ          float64 `yaml:"range_z"`
	MinWidth        float64 `yaml:"min_width"`
	WidthJitter     float64 `yaml:"width_jitter"`
	MinDepth        float64 `yaml:"min_depth"`
	DepthJitter     float64 `yaml:"depth_jitter"`
	WidthShrink     float64 `yaml:"width_shrink"` // Per level-equivalent
	DepthShrink     float64 `yaml:"depth_shrink"`
	WidthFloor      float64 `yaml:"width_floor"`
	DepthFloor      float64 `yaml:"depth_floor"`
	HomeWidth       float64 `yaml:"home_width"`
	HomeDepth       float64 `yaml:"home_depth"`
	RotationStep    float64 `yaml:"rotation_step"`
}

// PlanetoidsScoring defines points, combo and bonus parameters.
type PlanetoidsScoring struct {
	PointsPerPlanet      int `yaml:"points_per_planet"`
	ComboCap             int `yaml:"combo_cap"`
	ComboWindow          int `yaml:"combo_window"` // Ticks before an idle combo resets
	LevelCompletionBonus int `yaml:"level_completion_bonus"`
	PlanetsForBonus      int `yaml:"planets_for_bonus"`
	ExplorationBonus     int `yaml:"exploration_bonus"`
	BoostTicks           int `yaml:"boost_ticks"`       // UI flag after an exploration bonus
	LevelBoostTicks      int `yaml:"level_boost_ticks"` // UI flag after a level clear
}

// PlanetoidsCamera defines scroll and camera parameters.
type PlanetoidsCamera struct {
	BaseScrollSpeed float64 `yaml:"base_scroll_speed"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added per level beyond the first
	LeadDistance    float64 `yaml:"lead_distance"`    // Player may not get further ahead of the camera
	FallMargin      float64 `yaml:"fall_margin"`      // Distance below the camera that ends the run
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
