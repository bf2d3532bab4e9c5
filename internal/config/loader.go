package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "klotski.yaml"

// LoadKlotski loads the Klotski configuration.
// Search order: customPath -> ~/.klotski/configs/klotski.yaml -> ./configs/klotski.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadKlotski(customPath string) (KlotskiConfig, error) {
	cfg := DefaultKlotskiConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultKlotskiConfig()
	if err := yaml.Unmarshal(defaultKlotskiYAML, &embedded); err != nil {
		return DefaultKlotskiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded.normalized(), nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (KlotskiConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KlotskiConfig{}, false
	}
	cfg := DefaultKlotskiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KlotskiConfig{}, false
	}
	return cfg.normalized(), true
}

// normalized replaces unusable values with defaults.
func (c KlotskiConfig) normalized() KlotskiConfig {
	def := DefaultKlotskiConfig()
	if c.Display.TickRate <= 0 {
		c.Display.TickRate = def.Display.TickRate
	}
	if c.Display.CellWidth <= 0 {
		c.Display.CellWidth = def.Display.CellWidth
	}
	if c.Levels.Pack == "" {
		c.Levels.Pack = def.Levels.Pack
	}
	if c.Storage.DB == "" {
		c.Storage.DB = def.Storage.DB
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = def.Server.IdleTimeout
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".klotski", "configs", filename)
}
