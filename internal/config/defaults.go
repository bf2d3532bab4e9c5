package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/klotski.yaml
var defaultKlotskiYAML []byte

// DefaultKlotskiConfig returns the default configuration.
func DefaultKlotskiConfig() KlotskiConfig {
	return KlotskiConfig{
		Levels: LevelsConfig{
			Pack: "classic",
		},
		Storage: StorageConfig{
			DB: "~/.klotski/solves.db",
		},
		Display: DisplayConfig{
			TickRate:  30,
			CellWidth: 2,
			ShowHelp:  true,
		},
		Theme: ThemeConfig{
			Heart:       "bright-red",
			Selected:    "bright-white",
			Wall:        "gray",
			SpecialWall: "orange",
			Goal:        "yellow",
			Frame:       "gray",
			Text:        "default",
			Hint:        "gray",
			Pieces: []string{
				"cyan", "green", "yellow", "blue", "magenta",
				"bright-cyan", "bright-green", "bright-yellow", "bright-blue", "bright-magenta",
			},
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
