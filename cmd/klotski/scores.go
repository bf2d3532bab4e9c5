package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
	"github.com/vovakirdan/tui-klotski/internal/registry"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

var (
	flagScoresBoard string
	flagScoresClear bool
	flagScoresTUI   bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show solved boards",
	Long: `Display per-board statistics for a pack: solve count, fewest moves,
fastest time and when the board was last solved.

Examples:
  klotski scores
  klotski scores classic --board Easy
  klotski scores classic --tui
  klotski scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresBoard, "board", "", "List the best runs of one board")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs listed with --board")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded solves of the pack")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse solves interactively")
}

func runScores(_ *cobra.Command, args []string) {
	id := packArg(args)

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		exitf("opening solve database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresTUI:
		rc := runtimeConfig()
		if err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	case flagScoresClear:
		if err := store.ClearSolves(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared solves of %s.\n", id)
	case flagScoresBoard != "":
		printRuns(store, id, flagScoresBoard)
	default:
		printPackStats(store, id)
	}
}

func packTitle(id string) string {
	for _, p := range registry.List() {
		if p.ID == id {
			return p.Title
		}
	}
	return id
}

func printPackStats(store *storage.Store, id string) {
	stats, err := store.PackStats(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("Solves - %s\n", packTitle(id))
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No boards solved yet.")
		fmt.Println()
		fmt.Printf("Run 'klotski play %s' to solve the first one!\n", id)
		return
	}

	fmt.Printf("  %-16s  %5s  %6s  %6s  %s\n", "Board", "Best", "Time", "Solves", "Last")
	fmt.Printf("  %-16s  %5s  %6s  %6s  %s\n", "-----", "----", "----", "------", "----")
	for _, s := range stats {
		fmt.Printf("  %-16s  %5d  %6s  %6d  %s\n",
			s.Board, s.BestMoves, klotski.FormatDuration(s.BestDuration), s.Solves,
			s.LastSolved.Format("2006-01-02 15:04"))
	}
}

func printRuns(store *storage.Store, id, board string) {
	runs, err := store.BestSolves(id, board, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("Best runs - %s / %s\n", packTitle(id), board)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("Not solved yet.")
		return
	}

	fmt.Printf("  %-4s  %5s  %6s  %s\n", "Rank", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %5s  %6s  %s\n", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %5d  %6s  %s\n", i+1, r.Moves, klotski.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.BoardStats(id, board); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Solved %d times, best %d moves.\n", stats.Solves, stats.BestMoves)
	}
}
