package core

// Grid is a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid creates a grid with every cell set to Space.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
	for i := range g.Cells {
		g.Cells[i] = SpaceCell
	}
	return g
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell at the given coordinate, or NoneCell off-grid.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return NoneCell
	}
	return g.Cells[g.index(c)]
}

// Set sets the cell at the given coordinate. Off-grid writes are ignored.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = cell
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// CoordsOf returns every coordinate whose cell equals c, in row-major order.
func (g *Grid) CoordsOf(c Cell) []Coord {
	var coords []Coord
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Cells[y*g.W+x] == c {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// Count returns how many cells equal c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.Cells {
		if cell == c {
			n++
		}
	}
	return n
}

// CountByPiece returns the number of cells each piece occupies.
func (g *Grid) CountByPiece() map[PieceID]int {
	counts := make(map[PieceID]int)
	for _, cell := range g.Cells {
		if cell.IsPiece() {
			counts[cell.Piece]++
		}
	}
	return counts
}
