package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [pack] [board]",
	Short: "Play a board",
	Long: `Start playing a board directly. The board is a 1-based number or a name;
without one the first playable board of the pack is used.

Controls:
  Arrows/WASD/HJKL  - Slide the selected piece
  Tab/Shift+Tab     - Select next/previous piece
  Space/Enter       - Slide the piece its only possible way
  U/Ctrl+Z          - Undo
  Ctrl+R/Ctrl+Y     - Redo
  R                 - Restart the board
  N/PgDn            - Next board
  Shift+N/PgUp      - Previous board
  P                 - Pause
  Ctrl+S            - Save a screenshot to ~/.klotski/screenshots
  Q/Ctrl+C/Esc      - Quit

Examples:
  klotski play
  klotski play classic Easy
  klotski play classic 5
  klotski play mypack --levels ./levels`,
	Args: cobra.MaximumNArgs(2),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	id := packArg(args)
	pack, err := openPack(id)
	if err != nil {
		exitf("%v", err)
	}
	if playableCount(pack) == 0 {
		exitf("pack %q has no playable board", id)
	}

	rc := runtimeConfig()
	if len(args) == 2 {
		rc.Board, err = resolveBoard(pack, args[1])
		if err != nil {
			exitf("%v", err)
		}
	}

	opts, err := gameOptions()
	if err != nil {
		exitf("%v", err)
	}
	game, err := opts.NewGame(id)
	if err != nil {
		exitf("%v", err)
	}

	store := openStore()
	runErr := tui.Run(game, store, rc)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
