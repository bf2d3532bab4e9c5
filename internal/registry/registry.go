// Package registry provides a global registry for level packs.
// Packs register themselves at startup, allowing the platform to discover
// and open them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
)

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Boards int
	Source string // "builtin" or the file the pack was read from
}

// Factory builds a fresh copy of a pack. Boards are mutable, so every
// session gets its own.
type Factory func() (*levels.Pack, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Panics if a pack with the same ID is already registered.
func Register(info PackInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", info.ID))
	}

	if info.Title == "" {
		info.Title = info.ID
	}
	factories[info.ID] = f
	infos[info.ID] = info
}

// RegisterPack registers a loaded pack. Its file is read again for every Open.
// Returns an error instead of panicking when the ID is taken.
func RegisterPack(p *levels.Pack, reload Factory) error {
	if Exists(p.ID) {
		return fmt.Errorf("registry: pack %q already registered", p.ID)
	}
	Register(PackInfo{
		ID:     p.ID,
		Title:  p.Name,
		Boards: len(p.Boards),
		Source: p.FilePath,
	}, reload)
	return nil
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Open builds a fresh copy of a pack by its ID.
// Returns an error if the pack ID is not registered.
func Open(id string) (*levels.Pack, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	p, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: opening pack %q: %w", id, err)
	}
	return p, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
