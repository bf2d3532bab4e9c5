package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gookit/color"

	"github.com/vovakirdan/tui-klotski/internal/config"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	kcore "github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/registry"
)

func TestApplyFlags(t *testing.T) {
	defer func() { flagDBPath, flagPack, flagFPS, flagLevels = "", "", 0, "" }()

	base := config.DefaultKlotskiConfig()
	if got := applyFlags(base); got.Storage.DB != base.Storage.DB || got.Levels.Pack != base.Levels.Pack {
		t.Error("unset flags must keep configured values")
	}

	flagDBPath = "/tmp/x.db"
	flagPack = "mine"
	flagFPS = 12
	flagLevels = "./levels"
	got := applyFlags(base)
	if got.Storage.DB != "/tmp/x.db" || got.Levels.Pack != "mine" || got.Display.TickRate != 12 || got.Levels.Dir != "./levels" {
		t.Errorf("flags should override config, got %+v", got)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in, want string
	}{
		{"~/levels", "/home/tester/levels"},
		{"~", "/home/tester"},
		{"./levels", "./levels"},
		{"~other/levels", "~other/levels"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestResolveBoard(t *testing.T) {
	pack, err := levels.Classic()
	if err != nil {
		t.Fatalf("Classic failed: %v", err)
	}

	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"Easy", 1, false},
		{"easy", 1, false},
		{"2", 1, false},
		{"1", 0, false},
		{"0", 0, true},
		{"999", 0, true},
		{"Nowhere", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := resolveBoard(pack, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("expected index %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRegisterDirectory(t *testing.T) {
	dir := t.TempDir()
	level := "<Drop>\n@*@\n@.@\n"
	if err := os.WriteFile(filepath.Join(dir, "cmd-drop.kts"), []byte(level), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.kts"), []byte("<Bad>\n@?@\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	registerDirectory(dir)

	if !registry.Exists("cmd-drop") {
		t.Fatal("valid file should be registered under its base name")
	}
	if registry.Exists("broken") {
		t.Error("invalid file should be skipped")
	}

	p, err := openPack("cmd-drop")
	if err != nil {
		t.Fatalf("openPack failed: %v", err)
	}
	if len(p.Boards) != 1 || p.Boards[0].Name() != "Drop" {
		t.Errorf("unexpected boards %v", p.Names())
	}
	if playableCount(p) != 1 {
		t.Errorf("expected 1 playable board, got %d", playableCount(p))
	}

	if _, err := openPack("cmd-missing"); err == nil {
		t.Error("expected error for unknown pack")
	}
}

func TestRenderColoredMatchesNotation(t *testing.T) {
	pack, err := levels.Classic()
	if err != nil {
		t.Fatalf("Classic failed: %v", err)
	}
	b := pack.Boards[1]

	got := color.ClearCode(renderColored(b, klotski.DefaultTheme()))
	if want := kcore.RenderASCII(b); got != want {
		t.Errorf("colored output should read like the notation:\nexpected:\n%s\ngot:\n%s", want, got)
	}
}
