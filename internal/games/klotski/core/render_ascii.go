package core

import (
	"fmt"
	"strings"
)

// CellLabel returns the text printed for a cell: the piece name for pieces,
// the level glyph otherwise.
func (b *Board) CellLabel(c Cell) string {
	if c.IsPiece() {
		return b.PieceName(c.Piece)
	}
	return string(KindGlyph(c.Kind))
}

// RenderASCII prints the current grid in level notation.
// Every cell is right-aligned to MaxIDWidth so renamed pieces stay in columns.
//
// Format:
//
//	Name : WxH
//	@<row>@
func RenderASCII(b *Board) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s : %dx%d\n", b.Name(), b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		sb.WriteRune(GlyphBorder)
		for x := 0; x < b.Width(); x++ {
			sb.WriteString(fmt.Sprintf("%*s", b.MaxIDWidth(), b.CellLabel(b.CellAt(x, y))))
		}
		sb.WriteRune(GlyphBorder)
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer using RenderASCII.
func (b *Board) String() string {
	return RenderASCII(b)
}
