package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/registry"
)

// packArg returns the pack named by args[0], or the configured default.
func packArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Levels.Pack
}

// openPack opens a registered pack or explains how to list them.
func openPack(id string) (*levels.Pack, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown pack %q (run 'klotski list' to see available packs)", id)
	}
	return registry.Open(id)
}

// resolveBoard finds a board by 1-based number or by name.
// Names match exactly first, then ignoring case.
func resolveBoard(p *levels.Pack, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(p.Boards) {
			return 0, fmt.Errorf("pack %q has boards 1 to %d, not %d", p.ID, len(p.Boards), n)
		}
		return n - 1, nil
	}

	if _, i, ok := p.Find(arg); ok {
		return i, nil
	}
	for i, b := range p.Boards {
		if strings.EqualFold(b.Name(), arg) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("pack %q has no board %q", p.ID, arg)
}
