// Package config provides YAML-based configuration loading for Klotski.
package config

import "time"

// KlotskiConfig contains all configuration for the Klotski player.
type KlotskiConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Theme   ThemeConfig   `yaml:"theme"`
	Server  ServerConfig  `yaml:"server"`
}

// LevelsConfig selects where boards come from.
type LevelsConfig struct {
	Dir  string `yaml:"dir"`  // Extra directory of .kts/.yaml packs, empty for none
	Pack string `yaml:"pack"` // Pack played by default
}

// StorageConfig locates the solve database.
type StorageConfig struct {
	DB string `yaml:"db"` // SQLite file, "~" is expanded
}

// DisplayConfig defines how boards are drawn.
type DisplayConfig struct {
	TickRate  int  `yaml:"tick_rate"`  // Ticks per second
	CellWidth int  `yaml:"cell_width"` // Minimum columns per board cell
	ShowHelp  bool `yaml:"show_help"`  // Show the controls line
}

// ThemeConfig names the colors used for board elements.
// Names are those accepted by core.ParseColor.
type ThemeConfig struct {
	Heart       string   `yaml:"heart"`
	Selected    string   `yaml:"selected"`
	Wall        string   `yaml:"wall"`
	SpecialWall string   `yaml:"special_wall"`
	Goal        string   `yaml:"goal"`
	Frame       string   `yaml:"frame"`
	Text        string   `yaml:"text"`
	Hint        string   `yaml:"hint"`
	Pieces      []string `yaml:"pieces"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.klotski/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
