package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start blockfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quitting a game returns to the menu.

Examples:
  blockfall menu
  blockfall menu --difficulty easy --sound`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	for {
		menuResult, err := tui.RunMenu(s.runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		s.runtime = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			break
		}

		if err := s.play(menuResult.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}
}
