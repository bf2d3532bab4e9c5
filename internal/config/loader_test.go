package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg KlotskiConfig
	if err := yaml.Unmarshal(defaultKlotskiYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultKlotskiConfig()) {
		t.Errorf("embedded defaults differ from DefaultKlotskiConfig:\n%+v\n%+v", cfg, DefaultKlotskiConfig())
	}
}

func TestLoadKlotskiCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "klotski.yaml")
	content := `
levels:
  dir: /srv/levels
display:
  tick_rate: 0
theme:
  heart: red
server:
  idle_timeout: 5m
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKlotski(path)
	if err != nil {
		t.Fatalf("LoadKlotski failed: %v", err)
	}

	if cfg.Levels.Dir != "/srv/levels" {
		t.Errorf("Levels.Dir: expected /srv/levels, got %q", cfg.Levels.Dir)
	}
	if cfg.Levels.Pack != "classic" {
		t.Errorf("Levels.Pack should keep its default, got %q", cfg.Levels.Pack)
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("invalid tick rate should fall back to 30, got %d", cfg.Display.TickRate)
	}
	if cfg.Theme.Heart != "red" || cfg.Theme.Goal != "yellow" {
		t.Errorf("unexpected theme %+v", cfg.Theme)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout: expected 5m, got %v", cfg.Server.IdleTimeout)
	}
}

func TestLoadKlotskiErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("display: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"invalid yaml", broken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKlotski(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadKlotskiLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "levels:\n  pack: mine\n"
	if err := os.WriteFile(filepath.Join(dir, "configs", "klotski.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd) //nolint:errcheck

	cfg, err := LoadKlotski("")
	if err != nil {
		t.Fatalf("LoadKlotski failed: %v", err)
	}
	if cfg.Levels.Pack != "mine" {
		t.Errorf("expected pack from ./configs, got %q", cfg.Levels.Pack)
	}
}

func TestLoadKlotskiFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd) //nolint:errcheck

	cfg, err := LoadKlotski("")
	if err != nil {
		t.Fatalf("LoadKlotski failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultKlotskiConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
