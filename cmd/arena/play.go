package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arena/internal/platform/tui"
	"github.com/vovakirdan/tile-arena/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the arena",
	Long: `Start a run in the given mode, or the mode picked by --difficulty.

Controls:
  W/Up       - Move forward
  S/Down     - Move back
  A/Left     - Move left
  D/Right    - Move right
  Space      - Fire
  P/Esc      - Pause
  I          - Toggle max difficulty
  T          - Toggle danger overlay
  R          - Restart (paused or after game over)
  ?          - Full help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower adversaries, faster reload
  normal - Default pacing
  hard   - Faster pacing, two adversaries at start
  fixed  - No speedup with score
  max    - Start at the fastest pacing

Examples:
  arena play
  arena play arena_hard
  arena play --difficulty easy
  arena play --config ./my-arena.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID, err := modeFromArgs(args)
	if err != nil {
		return err
	}
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q; run 'arena list' to see available modes", modeID)
	}

	env, cleanup, err := openEnv(io.Discard)
	if err != nil {
		return err
	}
	defer cleanup()

	game, err := env.CreateGame(modeID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, env, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
