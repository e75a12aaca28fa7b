package config

import (
	_ "embed"
)

//go:embed defaults/planetoids.yaml
var defaultPlanetoidsYAML []byte

// DefaultPlanetoidsConfig returns the built-in configuration. It is the
// fallback when the embedded YAML cannot be parsed.
func DefaultPlanetoidsConfig() PlanetoidsConfig {
	return PlanetoidsConfig{
		Physics: PlanetoidsPhysics{
			Gravity:             0.35,
			AscentGravityFactor: 0.85,
			JumpForce:           13.5,
			MoveSpeed:           5.0,
			JumpBoost:           1.3,
			WrapX:               320,
			TickSeconds:         0.016,
			DriftTimeout:        3.0,
			LateralAssistRate:   0.02,
			LateralDeadzone:     5,
			AssistBelow:         100,
			AssistAbove:         50,
			LandingMargin:       10,
			LandingBelow:        10,
			LandingAbove:        20,
		},
		World: PlanetoidsWorld{
			PlanetsPerLevel: 20,
			MaxLevels:       5,
			StartAltitude:   50,
			StartWidth:      120,
			StartDepth:      60,
			FirstBand:       100,
			BandStep:        70,
			BandLift:        4,
			SpreadX:         300,
			RangeZ:          30,
			MinWidth:        50,
			WidthJitter:     40,
			MinDepth:        35,
			DepthJitter:     25,
			WidthShrink:     1.5,
			DepthShrink:     1.0,
			WidthFloor:      25,
			DepthFloor:      20,
			HomeWidth:       180,
			HomeDepth:       90,
			RotationStep:    0.08,
		},
		Scoring: PlanetoidsScoring{
			PointsPerPlanet:      10,
			ComboCap:             10,
			ComboWindow:          100,
			LevelCompletionBonus: 500,
			PlanetsForBonus:      10,
			ExplorationBonus:     50,
			BoostTicks:           60,
			LevelBoostTicks:      120,
		},
		Camera: PlanetoidsCamera{
			BaseScrollSpeed: 1.2,
			SpeedMultiplier: 0.6,
			LeadDistance:    240,
			FallMargin:      50,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultPlanetoidsYAML
}
