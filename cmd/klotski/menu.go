package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick packs and boards interactively",
	Long: `Start the interactive chooser.

Solved boards are marked with their best move count. Leaving a game
returns to the chooser.

Controls:
  Up/Down/j/k     - Select board
  Left/Right/h/l  - Switch pack
  Enter/Space     - Play board
  Tab             - Solve table
  Q/Esc           - Quit

Examples:
  klotski menu
  klotski menu --pack classic
  klotski menu --levels ./levels --db ./solves.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	opts, err := gameOptions()
	if err != nil {
		exitf("%v", err)
	}

	store := openStore()
	runErr := tui.RunSession(store, runtimeConfig(), opts, cfg.Levels.Pack)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("%v", runErr)
	}
}
