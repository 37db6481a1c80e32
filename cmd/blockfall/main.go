// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list               - List available variants
//	blockfall play [variant]     - Play a variant (default: marathon)
//	blockfall menu               - Pick a variant interactively
//	blockfall config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--seed <value>         - RNG seed for a reproducible piece sequence
//	--log-file <path>      - Write logs to a file
//	--sound                - Enable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/blockfall/internal/games/tetris"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play classic --difficulty hard
  blockfall menu --sound
  blockfall config --config ./my-blockfall.yaml`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
