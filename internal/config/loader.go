package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadPlanetoids loads the planetoids configuration.
// Search order: customPath -> ~/.planetoids/configs/planetoids.yaml -> ./configs/planetoids.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadPlanetoids(customPath string) (PlanetoidsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlanetoidsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PlanetoidsConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("planetoids.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "planetoids.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultPlanetoidsYAML)
	if err != nil {
		return DefaultPlanetoidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes a YAML document over the defaults and validates the result.
func parse(data []byte) (PlanetoidsConfig, error) {
	cfg := DefaultPlanetoidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlanetoidsConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlanetoidsConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg PlanetoidsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate rejects values the simulation cannot run with.
func (c PlanetoidsConfig) Validate() error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"world.planets_per_level", c.World.PlanetsPerLevel > 0},
		{"world.max_levels", c.World.MaxLevels > 0},
		{"world.band_step", c.World.BandStep > 0},
		{"physics.tick_seconds", c.Physics.TickSeconds > 0},
		{"physics.wrap_x", c.Physics.WrapX > 0},
		{"physics.gravity", c.Physics.Gravity >= 0},
		{"scoring.combo_cap", c.Scoring.ComboCap > 0},
		{"scoring.planets_for_bonus", c.Scoring.PlanetsForBonus > 0},
		{"camera.base_scroll_speed", c.Camera.BaseScrollSpeed >= 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s: %w", chk.field, ErrInvalidConfig)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planetoids", "configs", filename)
}
