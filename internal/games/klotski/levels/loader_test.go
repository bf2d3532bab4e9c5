package levels_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLoader(root string) *levels.Loader {
	l := levels.NewLoader(root)
	l.Logger = log.New(io.Discard)
	return l
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mine.kts", "<One>\n@*.@\n<Two>\n@ *.@\n")
	writeFile(t, dir, "nested/tiny.yaml", `
id: tiny
name: Tiny pack
boards:
  - name: Tiny
    rows: ["   ", " * ", " . "]
`)
	writeFile(t, dir, "broken.kts", "<Broken>\n@a .@\n")
	writeFile(t, dir, "notes.txt", "<Ignored>\n@*.@\n")

	packs, err := quietLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(packs) != 2 {
		t.Fatalf("expected 2 packs, got %d", len(packs))
	}

	// Sorted by ID.
	if packs[0].ID != "mine" || packs[1].ID != "tiny" {
		t.Errorf("unexpected pack order %q, %q", packs[0].ID, packs[1].ID)
	}
	if len(packs[0].Boards) != 2 || packs[0].Name != "mine" {
		t.Errorf("mine: unexpected pack %+v", packs[0])
	}
	if packs[1].Name != "Tiny pack" || packs[1].Boards[0].Height() != 3 {
		t.Errorf("tiny: unexpected pack %+v", packs[1])
	}
	if filepath.Base(packs[1].FilePath) != "tiny.yaml" {
		t.Errorf("expected FilePath to point at tiny.yaml, got %q", packs[1].FilePath)
	}
}

func TestLoaderLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"invalid board in yaml", "bad.yaml", "boards:\n  - name: Bad\n    rows: [\"a .\"]\n"},
		{"text without boards", "empty.kts", "just prose\n"},
		{"inconsistent rows", "wide.kts", "<W>\n@*.@\n@ . @\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			if _, err := quietLoader(dir).LoadFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := quietLoader(dir).LoadFile(filepath.Join(dir, "missing.kts")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoaderLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alpha.kts", "<A>\n@*.@\n")

	pack, err := quietLoader(dir).LoadByID("alpha")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if pack.Boards[0].Name() != "A" {
		t.Errorf("unexpected board %q", pack.Boards[0].Name())
	}

	if _, err := quietLoader(dir).LoadByID("beta"); err == nil {
		t.Error("expected error for unknown pack")
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	if _, err := quietLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("expected error for missing root")
	}
}
