package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-planetoids/internal/games/planetoids"
	"github.com/vovakirdan/tui-planetoids/internal/platform/tui"
	"github.com/vovakirdan/tui-planetoids/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeHold   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Planetoid Hop SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own journey. Finished runs of every
connection go to one run journal that lives as long as the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.planetoids/host_key

Examples:
  planetoids serve                           # Listen on :23234 with auto-generated key
  planetoids serve --ssh :2222               # Listen on port 2222
  planetoids serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeHold, "hold", int(tui.DefaultHoldWindow.Milliseconds()), "Key hold window in milliseconds")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if _, err := applyGameFlags(); err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("run journal unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.GameID = planetoids.ID
	cfg.TickRate = flagFPS
	cfg.HoldWindow = msToDuration(flagServeHold)
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Planetoid Hop SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}

// msToDuration converts a millisecond flag. Non-positive values select the
// default downstream.
func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
