package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-planetoids/internal/audio"
	"github.com/vovakirdan/tui-planetoids/internal/core"
	"github.com/vovakirdan/tui-planetoids/internal/games/planetoids"
	"github.com/vovakirdan/tui-planetoids/internal/platform/tui"
	"github.com/vovakirdan/tui-planetoids/internal/storage"
)

var (
	flagSound  bool
	flagVolume float64
	flagHold   int
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Planetoid Hop",
	Long: `Start a journey in this terminal.

Controls:
  A/D, Left/Right  - Steer
  Space/W/Up       - Jump
  P                - Pause
  R                - Restart (after game over)
  Tab              - Scoreboard of this session
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so a press keeps its
action held for --hold milliseconds; auto-repeat extends it.

Difficulty options:
  easy   - Slower scrolling and a longer combo window
  normal - The default tuning
  hard   - Faster scrolling and a shorter combo window
  fixed  - Scroll speed never increases between chapters

Examples:
  planetoids play
  planetoids play --difficulty easy
  planetoids play --sound --volume -1
  planetoids play --config ./my-planetoids.yaml --log-file ./play.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sine-tone cues")
	playCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Cue volume in halvings (0 = full scale)")
	playCmd.Flags().IntVar(&flagHold, "hold", int(tui.DefaultHoldWindow.Milliseconds()), "Key hold window in milliseconds")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with finished runs")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt screen owns the terminal, so logs are dropped unless a file is given.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if _, err := applyGameFlags(); err != nil {
		fail("%v", err)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("run journal unavailable", "error", err)
		store = nil
	}

	var chimes *audio.Chimes
	if flagSound {
		chimes = audio.NewChimes(flagVolume)
		if err := chimes.Initialize(); err != nil {
			logger.Warn("audio unavailable", "error", err)
			chimes = nil
		}
	}

	runErr := tui.Run(planetoids.New(), cfg, tui.Options{
		Player:     flagPlayer,
		Store:      store,
		Logger:     logger,
		Chimes:     chimes,
		HoldWindow: msToDuration(flagHold),
	})

	if chimes != nil {
		chimes.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
