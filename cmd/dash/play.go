package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dash-arcade/internal/core"
	"github.com/vovakirdan/dash-arcade/internal/platform/tui"
	"github.com/vovakirdan/dash-arcade/internal/registry"
	"github.com/vovakirdan/dash-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Space/Up/W  - Jump
  Enter       - Start / continue after a victory
  P           - Pause / resume
  R           - Restart after game over or victory
  B/Esc       - Back to the title screen
  M           - Mute
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  dash play dash
  dash play dash_boss
  dash play dash --seed 42 --fps 30
  dash play dash_boss --config ./tuning.yaml --log ./dash.log --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history. A missing store only disables history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dash list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("dash", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	cfg := runtimeConfig()
	logger.Info("starting", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
