package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-planetoids/internal/config"
	"github.com/vovakirdan/tui-planetoids/internal/games/planetoids"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addGameFlags registers the flags that shape the simulation.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands the flags to the game package and loads the
// configuration once so a broken file is reported before the screen opens.
func applyGameFlags() (config.PlanetoidsConfig, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return config.PlanetoidsConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	planetoids.SetConfigPath(flagConfig)
	planetoids.SetDifficultyPreset(flagDifficulty)
	return planetoids.LoadConfig()
}
