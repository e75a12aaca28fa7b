// planetoids is a terminal rendition of Planetoid Hop, a vertically
// scrolling platform jumper.
//
// Usage:
//
//	planetoids play          - Play in this terminal
//	planetoids list          - List available games
//	planetoids serve         - Start SSH server for remote play
//	planetoids config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-planetoids/internal/games/planetoids"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planetoids",
	Short: "Planetoid Hop - hop across planetoids in your terminal",
	Long: `Planetoid Hop is a vertically scrolling platform jumper. Guide the
Prince upward from planetoid to planetoid while the cosmos scrolls past.
Fall behind the camera or drift in empty space for too long and the
journey ends.

Available commands:
  play     - Play in this terminal
  list     - Show all available games
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  planetoids play
  planetoids play --difficulty hard --sound
  planetoids serve --ssh :2222
  planetoids config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
