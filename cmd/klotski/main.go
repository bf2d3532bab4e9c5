// klotski is a terminal player for Klotski sliding-block puzzles.
//
// Usage:
//
//	klotski list [pack]          - List packs, or the boards of a pack
//	klotski show <pack> [board]  - Print boards in level notation
//	klotski play [pack] [board]  - Play a board
//	klotski menu                 - Pick packs and boards interactively
//	klotski scores [pack]        - Show solved boards
//	klotski serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Configuration file (default: search path)
//	--db <path>      - Solve database (default: ~/.klotski/solves.db)
//	--levels <dir>   - Extra directory of .kts/.yaml level packs
//	--pack <id>      - Pack to play by default (default: classic)
//	--fps <rate>     - Tick rate
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klotski/internal/config"
	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
	"github.com/vovakirdan/tui-klotski/internal/registry"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagLevels string
	flagPack   string
	flagFPS    int

	// cfg is the loaded configuration with flag overrides applied.
	cfg config.KlotskiConfig

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "klotski",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "klotski",
	Short: "Klotski - slide the heart onto the goal",
	Long: `Klotski is a sliding-block puzzle player for the terminal.

Slide the pieces until the heart (*) covers every goal cell. Boards come
from the built-in classic pack and from any level directory you point it at.

Available commands:
  list     - Show packs and their boards
  show     - Print boards in level notation
  play     - Play a board directly
  menu     - Interactive pack and board chooser
  scores   - View solved boards
  serve    - Start SSH server for remote play

Examples:
  klotski list
  klotski list classic
  klotski show classic Easy
  klotski play classic Easy
  klotski menu --levels ./my-levels
  klotski serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solve database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of extra level packs (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "Default pack (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and registers directory packs.
func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.LoadKlotski(flagConfig)
	if err != nil {
		return err
	}
	cfg = applyFlags(loaded)

	if cfg.Levels.Dir != "" {
		registerDirectory(expandHome(cfg.Levels.Dir))
	}
	return nil
}

// applyFlags overrides configuration values with the flags that were set.
func applyFlags(c config.KlotskiConfig) config.KlotskiConfig {
	if flagDBPath != "" {
		c.Storage.DB = flagDBPath
	}
	if flagLevels != "" {
		c.Levels.Dir = flagLevels
	}
	if flagPack != "" {
		c.Levels.Pack = flagPack
	}
	if flagFPS > 0 {
		c.Display.TickRate = flagFPS
	}
	return c
}

// registerDirectory registers every pack file under dir.
// Each file is read again whenever its pack is opened.
func registerDirectory(dir string) {
	loader := levels.NewLoader(dir)
	loader.Logger = logger

	packs, err := loader.LoadAll()
	if err != nil {
		logger.Warn("could not read level directory", "dir", dir, "err", err)
		return
	}

	for _, p := range packs {
		path := p.FilePath
		reload := func() (*levels.Pack, error) {
			return loader.LoadFile(path)
		}
		if err := registry.RegisterPack(p, reload); err != nil {
			logger.Warn("skipping pack", "id", p.ID, "path", path, "err", err)
			continue
		}
		logger.Debug("registered pack", "id", p.ID, "boards", len(p.Boards))
	}
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// gameOptions builds the board look from the configuration.
func gameOptions() (tui.GameOptions, error) {
	theme, err := klotski.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return tui.GameOptions{}, err
	}
	return tui.GameOptions{
		Theme:     theme,
		CellWidth: cfg.Display.CellWidth,
		ShowHelp:  cfg.Display.ShowHelp,
	}, nil
}

// openStore opens the solve database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open solve database", "path", cfg.Storage.DB, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Display.TickRate
	return rc
}

// exitf prints an error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
