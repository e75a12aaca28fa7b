package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-planetoids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the way play does and print it as YAML.

Search order: --config, ~/.planetoids/configs/planetoids.yaml,
./configs/planetoids.yaml, then the built-in defaults. The difficulty
preset is applied on top.

Examples:
  planetoids config > my-planetoids.yaml
  planetoids config --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := applyGameFlags()
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("configuration resolved", "config", flagConfig, "difficulty", flagDifficulty)

	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(out)
}
