package tui

import (
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/registry"
	"github.com/vovakirdan/tui-klotski/internal/storage"
)

const tinyPackID = "tui-tiny"

// tinyLevels holds two corridors the heart solves by sliding down twice.
const tinyLevels = `
<Shaft>
@#*#@
@# #@
@#.#@

<Icon>
@*.@

<Chute>
@ * @
@   @
@ . @
`

var tinyOnce sync.Once

func registerTinyPack(t *testing.T) string {
	t.Helper()
	tinyOnce.Do(func() {
		registry.Register(registry.PackInfo{ID: tinyPackID, Title: "Tiny", Boards: 3}, func() (*levels.Pack, error) {
			boards, err := levels.ParseString(tinyLevels)
			if err != nil {
				return nil, err
			}
			return &levels.Pack{ID: tinyPackID, Name: "Tiny", Boards: boards}, nil
		})
	})
	return tinyPackID
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "solves.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10}
}

func sendGame(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		gm, ok := next.(GameModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = gm
	}
	return m
}
