package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarwowski/pacmaze/internal/core"
	"github.com/mkarwowski/pacmaze/internal/game"
	"github.com/mkarwowski/pacmaze/internal/platform/tui"
	"github.com/mkarwowski/pacmaze/internal/registry"
	"github.com/mkarwowski/pacmaze/internal/storage"
)

var (
	flagConfig string
	flagStage  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD - Move
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  pacmaze play
  pacmaze play --config ./my-tuning.yaml
  pacmaze play --stage ./my-stage.yaml
  pacmaze play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagStage, "stage", "", "Path to custom stage YAML (default: built-in classic)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 36 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config/stage paths before the game is created
	game.SetConfigPath(flagConfig)
	game.SetStagePath(flagStage)

	g, err := registry.New("pacmaze")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
