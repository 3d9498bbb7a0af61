package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-arcade/internal/platform/tui"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows        - Tilt the plate
  Shift+dir / WASD   - Precision tilt (capital letters)
  M                  - Switch Normal / Time Trial
  R                  - Restart with a fresh layout
  P                  - Pause
  Esc/B              - Leave the game
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Fewer hazards and holes, softer penalties
  normal - The config as written, harder after each clear
  hard   - More hazards and holes, harsher penalties
  fixed  - No progression between clears

Examples:
  arcade play tilt
  arcade play tilt_trial
  arcade play tilt --difficulty hard
  arcade play tilt --config ./my-tilt.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	ls := openLocalSession()
	ls.logger.Info("game started", "game", gameID, "seed", ls.cfg.Seed)
	runErr := tui.Run(game, ls.store, ls.cfg, ls.logger)
	ls.closer()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
