// Package core provides the board model and move-legality engine for Klotski.
// This package is UI-agnostic and deterministic.
package core

// Glyphs of the level notation.
const (
	GlyphWall        = '#'
	GlyphSpecialWall = '-'
	GlyphGoal        = '.'
	GlyphBorder      = '@'
	GlyphSpace       = ' '
	GlyphHeart       = '*'
)

// IconBoardName is the decorative board exempt from the goal and heart checks.
const IconBoardName = "Icon"

// Kind is the tag of a Cell.
type Kind uint8

const (
	KindNone Kind = iota // off-grid sentinel
	KindWall
	KindSpecialWall
	KindGoal
	KindBorder
	KindSpace
	KindPiece
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindWall:
		return "Wall"
	case KindSpecialWall:
		return "SpecialWall"
	case KindGoal:
		return "Goal"
	case KindBorder:
		return "Border"
	case KindSpace:
		return "Space"
	case KindPiece:
		return "Piece"
	default:
		return "Unknown"
	}
}

// PieceID is an opaque handle for a piece on a board.
// Names are resolved through the owning Board.
type PieceID uint16

// HeartID is the reserved identity of the goal piece.
const HeartID PieceID = 0

// Cell is a single grid cell. Piece is meaningful only when Kind is KindPiece.
type Cell struct {
	Kind  Kind
	Piece PieceID
}

// Predefined non-piece cells.
var (
	NoneCell        = Cell{Kind: KindNone}
	WallCell        = Cell{Kind: KindWall}
	SpecialWallCell = Cell{Kind: KindSpecialWall}
	GoalCell        = Cell{Kind: KindGoal}
	BorderCell      = Cell{Kind: KindBorder}
	SpaceCell       = Cell{Kind: KindSpace}
	HeartCell       = Cell{Kind: KindPiece, Piece: HeartID}
)

// PieceCell returns a cell occupied by the given piece.
func PieceCell(id PieceID) Cell {
	return Cell{Kind: KindPiece, Piece: id}
}

// IsPiece returns true if the cell holds any piece, the heart included.
func (c Cell) IsPiece() bool {
	return c.Kind == KindPiece
}

// IsHeart returns true if the cell holds the goal piece.
func (c Cell) IsHeart() bool {
	return c.Kind == KindPiece && c.Piece == HeartID
}

// Holds returns true if the cell is occupied by piece id.
func (c Cell) Holds(id PieceID) bool {
	return c.Kind == KindPiece && c.Piece == id
}

// IsPieceGlyph reports whether r may name a regular piece in level text.
func IsPieceGlyph(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// GlyphKind maps a reserved glyph to its kind.
// Piece glyphs, the heart included, report KindPiece.
func GlyphKind(r rune) (Kind, bool) {
	switch r {
	case GlyphWall:
		return KindWall, true
	case GlyphSpecialWall:
		return KindSpecialWall, true
	case GlyphGoal:
		return KindGoal, true
	case GlyphBorder:
		return KindBorder, true
	case GlyphSpace:
		return KindSpace, true
	case GlyphHeart:
		return KindPiece, true
	}
	if IsPieceGlyph(r) {
		return KindPiece, true
	}
	return KindNone, false
}

// KindGlyph returns the glyph used to print a non-piece kind.
func KindGlyph(k Kind) rune {
	switch k {
	case KindWall:
		return GlyphWall
	case KindSpecialWall:
		return GlyphSpecialWall
	case KindGoal:
		return GlyphGoal
	case KindBorder:
		return GlyphBorder
	case KindSpace:
		return GlyphSpace
	default:
		return '?'
	}
}
