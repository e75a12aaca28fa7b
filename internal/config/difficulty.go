package config

// ApplyPlanetoidsPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPlanetoidsPreset(cfg *PlanetoidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Camera.BaseScrollSpeed *= 0.75
		cfg.Camera.SpeedMultiplier *= 0.75
		cfg.Scoring.ComboWindow += cfg.Scoring.ComboWindow / 2
	case DifficultyHard:
		cfg.Camera.BaseScrollSpeed *= 1.25
		cfg.Camera.SpeedMultiplier *= 1.35
		cfg.World.WidthShrink *= 1.5
		cfg.World.DepthShrink *= 1.5
	case DifficultyFixed:
		// Scroll speed stays at the base value for every level.
		cfg.Camera.SpeedMultiplier = 0
	}
}

// ScrollSpeed returns the camera scroll speed for a level. Speed increases
// discretely per level, never continuously within one.
func (c PlanetoidsCamera) ScrollSpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return c.BaseScrollSpeed + float64(level-1)*c.SpeedMultiplier
}
