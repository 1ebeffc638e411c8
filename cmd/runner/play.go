package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkovalev/tui-runner/internal/config"
	"github.com/mkovalev/tui-runner/internal/core"
	"github.com/mkovalev/tui-runner/internal/game"
	"github.com/mkovalev/tui-runner/internal/platform/tui"
	"github.com/mkovalev/tui-runner/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump (or restart after game over)
  Click      - Jump (or restart after game over)
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --record
  runner play --seed 42 --fps 30
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record this session for replay")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.Game.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	record := flagRecord || cfg.Recording.Enabled

	dbPath := cfg.Recording.Database
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	// Open recording storage; the game works fine without it
	var store *storage.Store
	if record {
		store, err = storage.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
			store = nil
		}
	}

	runErr := tui.Run(game.New(), store, runtimeCfg, record)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
