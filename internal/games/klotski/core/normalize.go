package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// Normalize gives every 4-connected group of same-piece cells its own identity.
//
// names maps the piece IDs of g to their names, with names[HeartID] naming the
// heart. The heart is never split. Every other component keeps its name if it
// is still free; otherwise it gets the first free "<first rune><n>" for n >= 2.
// Components are discovered in row-major order and numbered from 1.
// A piece ID past the end of names is named by its number.
//
// Normalize returns the new grid, the name table indexed by the new IDs and
// the length of the longest name. g is left untouched.
func Normalize(g *Grid, names []string) (*Grid, []string, int) {
	scan := g.Clone()
	out := g.Clone()

	heartName := string(GlyphHeart)
	if len(names) > 0 {
		heartName = names[HeartID]
	}
	outNames := []string{heartName}
	used := mapset.New[string]()
	used.Put(heartName)
	maxWidth := utf8.RuneCountInString(heartName)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			start := C(x, y)
			cell := scan.Get(start)
			if !cell.IsPiece() || cell.IsHeart() {
				continue
			}

			name := rawName(names, cell.Piece)
			if used.Has(name) {
				name = freeName(name, used)
			}
			used.Put(name)
			id := PieceID(len(outNames))
			outNames = append(outNames, name)
			if w := utf8.RuneCountInString(name); w > maxWidth {
				maxWidth = w
			}

			for _, p := range floodFill(scan, start) {
				out.Set(p, PieceCell(id))
			}
		}
	}

	return out, outNames, maxWidth
}

func rawName(names []string, id PieceID) string {
	if int(id) < len(names) && names[id] != "" {
		return names[id]
	}
	return fmt.Sprint(int(id))
}

// floodFill collects the 4-connected component of start.
// Visited cells are overwritten with NoneCell in scan so they are not reprocessed.
func floodFill(scan *Grid, start Coord) []Coord {
	target := scan.Get(start)
	scan.Set(start, NoneCell)

	component := []Coord{start}
	stack := []Coord{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range Dirs {
			n := p.Step(d)
			if scan.Get(n) != target {
				continue
			}
			scan.Set(n, NoneCell)
			component = append(component, n)
			stack = append(stack, n)
		}
	}
	return component
}

// freeName derives an unused name from name using a generation counter.
func freeName(name string, used mapset.Set[string]) string {
	first, _ := utf8.DecodeRuneInString(name)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%c%d", first, n)
		if !used.Has(candidate) {
			return candidate
		}
	}
}
