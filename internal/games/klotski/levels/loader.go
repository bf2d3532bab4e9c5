package levels

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels/formats"
)

// Loader handles loading level packs from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, Logger: log.Default()}
}

// LoadAll recursively scans and loads all pack files.
// Invalid files are skipped with a warning.
// Returns packs sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]*Pack, error) {
	var packs []*Pack

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		pack, err := l.LoadFile(path)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", path, "err", err)
			}
			return nil
		}

		packs = append(packs, pack)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})

	return packs, nil
}

// LoadFile loads a single pack file. Text packs take their ID and name from
// the file's base name; YAML packs fall back to it when no id is given.
func (l *Loader) LoadFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ext := strings.ToLower(filepath.Ext(path))

	pack, err := parseByExtension(data, ext)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if pack.ID == "" {
		pack.ID = base
	}
	if pack.Name == "" {
		pack.Name = base
	}
	pack.FilePath = path
	return pack, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (*Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, fmt.Errorf("pack not found: %s", id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (*Pack, error) {
	switch ext {
	case ".kts":
		boards, err := Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if len(boards) == 0 {
			return nil, fmt.Errorf("no boards found")
		}
		return &Pack{Boards: boards}, nil
	case ".yaml", ".yml":
		def, err := formats.ParseYAML(data)
		if err != nil {
			return nil, err
		}
		return fromDefinition(def)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
