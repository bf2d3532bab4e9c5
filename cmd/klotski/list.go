package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list [pack]",
	Short: "List level packs, or the boards of a pack",
	Long: `Without arguments, shows every registered pack.
With a pack ID, shows its boards with their size, piece count and best solve.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func runList(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		listBoards(args[0])
		return
	}

	packs := registry.List()
	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %6s  %-20s  %s\n", maxIDLen, "ID", "Boards", "Title", "Source")
	fmt.Printf("  %-*s  %6s  %-20s  %s\n", maxIDLen, "--", "------", "-----", "------")
	for _, p := range packs {
		fmt.Printf("  %-*s  %6d  %-20s  %s\n", maxIDLen, p.ID, p.Boards, p.Title, p.Source)
	}

	fmt.Println()
	fmt.Println("Run 'klotski list <pack>' to see its boards.")
}

func listBoards(id string) {
	pack, err := openPack(id)
	if err != nil {
		exitf("%v", err)
	}

	solved := map[string]int{}
	if store := openStore(); store != nil {
		defer store.Close()
		if s, err := store.SolvedBoards(pack.ID); err == nil {
			solved = s
		}
	}

	fmt.Printf("%s (%s)\n", pack.Name, pack.ID)
	fmt.Println()
	fmt.Printf("  %3s  %-16s  %-6s  %6s  %s\n", "#", "Board", "Size", "Pieces", "Best")
	fmt.Printf("  %3s  %-16s  %-6s  %6s  %s\n", "-", "-----", "----", "------", "----")

	for i, b := range pack.Boards {
		if !b.Playable() {
			continue
		}
		best := "-"
		if n, ok := solved[b.Name()]; ok {
			best = fmt.Sprintf("%d", n)
		}
		size := fmt.Sprintf("%dx%d", b.Width(), b.Height())
		fmt.Printf("  %3d  %-16s  %-6s  %6d  %s\n", i+1, b.Name(), size, len(b.Pieces()), best)
	}

	fmt.Println()
	fmt.Printf("Run 'klotski play %s <board>' to play.\n", pack.ID)
}

// playableCount counts the boards a player can pick.
func playableCount(p *levels.Pack) int {
	n := 0
	for _, b := range p.Boards {
		if b.Playable() {
			n++
		}
	}
	return n
}
