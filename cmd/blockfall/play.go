package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (marathon when omitted).

Controls:
  Left/Right, h/l  - Move
  Up, k, x         - Rotate clockwise
  Down, j          - Soft drop (auto-drop waits while held)
  Space            - Hard drop
  Enter, p         - Start / pause / resume / new game
  Ctrl+S           - Save a screenshot
  Q, Ctrl+C        - Quit

Difficulty options:
  easy   - Start at level 0, 15 lines per level
  normal - Start at level 2
  hard   - Start at level 5, 8 lines per level
  fixed  - No progression, stays at the start level

Examples:
  blockfall play
  blockfall play wide
  blockfall play classic --difficulty hard
  blockfall play --seed 42 --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := tetris.VariantMarathon
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available variants.")
		os.Exit(1)
	}

	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := s.play(gameID)

	// Close before potential exit
	s.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
