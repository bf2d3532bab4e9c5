package levels

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels/formats"
)

// ClassicID is the identifier of the built-in pack.
const ClassicID = "classic"

//go:embed packs/classic.kts
var classicText string

// Pack is an ordered set of sealed boards.
// Board indices are positions in Boards, starting at 0.
type Pack struct {
	ID       string
	Name     string
	Boards   []*core.Board
	FilePath string
}

// Classic parses the built-in pack. Every call returns fresh boards.
func Classic() (*Pack, error) {
	boards, err := ParseString(classicText)
	if err != nil {
		return nil, fmt.Errorf("classic pack: %w", err)
	}
	return &Pack{ID: ClassicID, Name: "Classic", Boards: boards}, nil
}

// Board returns the board at index i.
func (p *Pack) Board(i int) (*core.Board, bool) {
	if i < 0 || i >= len(p.Boards) {
		return nil, false
	}
	return p.Boards[i], true
}

// Find returns the first board with the given name and its index.
func (p *Pack) Find(name string) (*core.Board, int, bool) {
	for i, b := range p.Boards {
		if b.Name() == name {
			return b, i, true
		}
	}
	return nil, -1, false
}

// NextPlayable returns the index of the first playable board after i, wrapping around.
// It returns -1 when the pack has no playable board.
func (p *Pack) NextPlayable(i int) int {
	n := len(p.Boards)
	for step := 1; step <= n; step++ {
		j := ((i+step)%n + n) % n
		if p.Boards[j].Playable() {
			return j
		}
	}
	return -1
}

// PrevPlayable returns the index of the first playable board before i, wrapping around.
// It returns -1 when the pack has no playable board.
func (p *Pack) PrevPlayable(i int) int {
	n := len(p.Boards)
	for step := 1; step <= n; step++ {
		j := ((i-step)%n + n) % n
		if p.Boards[j].Playable() {
			return j
		}
	}
	return -1
}

// Names returns the board names in pack order.
func (p *Pack) Names() []string {
	names := make([]string, len(p.Boards))
	for i, b := range p.Boards {
		names[i] = b.Name()
	}
	return names
}

// fromDefinition validates the boards of a parsed pack file.
func fromDefinition(def formats.Pack) (*Pack, error) {
	pack := &Pack{ID: def.ID, Name: def.Name}
	for _, bd := range def.Boards {
		b, err := core.NewBoard(bd.Name, bd.Rows)
		if err != nil {
			return nil, err
		}
		pack.Boards = append(pack.Boards, b)
	}
	return pack, nil
}
