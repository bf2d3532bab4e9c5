package core

import (
	"fmt"
	"unicode/utf8"
)

// Board is a sealed Klotski board.
//
// Dimensions, the piece set, the goal cells and the original grid are fixed at
// construction. Only the grid and the set of still-closed special walls change,
// through ApplyMove, Reset and Restore. Every change installs a complete new grid.
type Board struct {
	name string

	grid     *Grid
	original *Grid

	names      []string
	byName     map[string]PieceID
	maxIDWidth int

	goals            []Coord
	specialWalls     []Coord
	origSpecialWalls []Coord

	observers []observer
	nextObs   int
}

type observer struct {
	id int
	fn WallOpenedFunc
}

// WallOpenedFunc is notified when the heart opens a special wall.
type WallOpenedFunc func(at Coord)

// NewBoard validates rows of level glyphs, normalizes piece identities and seals the board.
// Errors are *LevelFormatError; Row is set when a specific row is at fault.
func NewBoard(name string, rows []string) (*Board, error) {
	fail := func(row int, format string, args ...any) error {
		return newFormatError(name, row, format, args...)
	}

	if name == "" {
		return nil, fail(0, "no name for level")
	}
	if len(rows) == 0 {
		return nil, fail(0, "board has no rows")
	}

	w := utf8.RuneCountInString(rows[0])
	if w == 0 {
		return nil, fail(1, "row is empty")
	}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fail(i+1, "row has inconsistent width %d, board is %d wide", n, w)
		}
	}

	raw := NewGrid(w, len(rows))
	names := []string{string(GlyphHeart)}
	rawIDs := make(map[rune]PieceID)
	for y, row := range rows {
		x := 0
		for _, r := range row {
			kind, ok := GlyphKind(r)
			if !ok {
				return nil, fail(y+1, "unknown cell symbol %q", r)
			}
			cell := Cell{Kind: kind}
			if kind == KindPiece && r != GlyphHeart {
				id, seen := rawIDs[r]
				if !seen {
					id = PieceID(len(names))
					rawIDs[r] = id
					names = append(names, string(r))
				}
				cell.Piece = id
			}
			raw.Set(C(x, y), cell)
			x++
		}
	}

	if name != IconBoardName {
		if raw.Count(HeartCell) == 0 {
			return nil, fail(0, "board has no heart piece")
		}
		if raw.Count(GoalCell) == 0 {
			return nil, fail(0, "board has no goal")
		}
	}

	grid, normNames, width := Normalize(raw, names)
	return seal(name, grid, normNames, width), nil
}

// seal captures goals, special walls and the original grid.
func seal(name string, grid *Grid, names []string, maxIDWidth int) *Board {
	b := &Board{
		name:       name,
		grid:       grid,
		original:   grid.Clone(),
		names:      names,
		byName:     make(map[string]PieceID, len(names)),
		maxIDWidth: maxIDWidth,
		goals:      grid.CoordsOf(GoalCell),
	}
	for i, n := range names {
		b.byName[n] = PieceID(i)
	}
	b.origSpecialWalls = grid.CoordsOf(SpecialWallCell)
	b.specialWalls = append([]Coord(nil), b.origSpecialWalls...)
	return b
}

func newFormatError(name string, row int, format string, args ...any) *LevelFormatError {
	return &LevelFormatError{Board: name, Row: row, Message: fmt.Sprintf(format, args...)}
}

// Name returns the board name.
func (b *Board) Name() string {
	return b.name
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.grid.W
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.grid.H
}

// Playable reports whether the board is meant to be played (every board but the icon).
func (b *Board) Playable() bool {
	return b.name != IconBoardName
}

// CellAt returns the cell at (x, y), or NoneCell outside the board.
func (b *Board) CellAt(x, y int) Cell {
	return b.grid.Get(C(x, y))
}

// At returns the cell at c, or NoneCell outside the board.
func (b *Board) At(c Coord) Cell {
	return b.grid.Get(c)
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() *Grid {
	return b.grid.Clone()
}

// OriginalGrid returns a copy of the grid captured at load time.
func (b *Board) OriginalGrid() *Grid {
	return b.original.Clone()
}

// HasPiece reports whether id is the heart or a piece identity of this board.
func (b *Board) HasPiece(id PieceID) bool {
	return int(id) < len(b.names)
}

// PieceName returns the display name of a piece, or "" for an unknown id.
func (b *Board) PieceName(id PieceID) string {
	if !b.HasPiece(id) {
		return ""
	}
	return b.names[id]
}

// PieceNames returns the name table indexed by PieceID.
func (b *Board) PieceNames() []string {
	return append([]string(nil), b.names...)
}

// PieceByName resolves a display name to a piece identity.
func (b *Board) PieceByName(name string) (PieceID, bool) {
	id, ok := b.byName[name]
	return id, ok
}

// Pieces returns the identities present on the original grid, heart first,
// then in row-major order of first appearance.
func (b *Board) Pieces() []PieceID {
	present := b.original.CountByPiece()
	ids := make([]PieceID, 0, len(present))
	for i := range b.names {
		if present[PieceID(i)] > 0 {
			ids = append(ids, PieceID(i))
		}
	}
	return ids
}

// MaxIDWidth returns the longest piece name, used for fixed-width text output.
func (b *Board) MaxIDWidth() int {
	return b.maxIDWidth
}

// Goals returns the goal coordinates captured at load time.
func (b *Board) Goals() []Coord {
	return append([]Coord(nil), b.goals...)
}

// SpecialWalls returns the special walls the heart has not opened yet.
func (b *Board) SpecialWalls() []Coord {
	return append([]Coord(nil), b.specialWalls...)
}

// Subscribe registers fn to be told about special walls opened by the heart.
// The returned function removes the subscription.
func (b *Board) Subscribe(fn WallOpenedFunc) (unsubscribe func()) {
	id := b.nextObs
	b.nextObs++
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

// IsWon reports whether the heart covers every goal cell.
func (b *Board) IsWon() bool {
	for _, p := range b.goals {
		if !b.grid.Get(p).IsHeart() {
			return false
		}
	}
	return true
}

// Reset restores the load-time grid and special walls.
func (b *Board) Reset() {
	b.grid = b.original.Clone()
	b.specialWalls = append([]Coord(nil), b.origSpecialWalls...)
}

// Snapshot captures the mutable state of a board.
type Snapshot struct {
	grid         *Grid
	specialWalls []Coord
}

// Snapshot returns the current grid and special walls.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		grid:         b.grid.Clone(),
		specialWalls: append([]Coord(nil), b.specialWalls...),
	}
}

// Restore reinstalls a state captured by Snapshot on the same board.
func (b *Board) Restore(s Snapshot) {
	if s.grid == nil {
		return
	}
	b.grid = s.grid.Clone()
	b.specialWalls = append([]Coord(nil), s.specialWalls...)
}
