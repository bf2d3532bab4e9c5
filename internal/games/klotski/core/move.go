package core

import "strconv"

// CanMove reports whether piece id can slide one cell by (dx, dy).
// It fails with *InvalidDirectionError unless (dx, dy) is a unit vector.
func (b *Board) CanMove(id PieceID, dx, dy int) (bool, error) {
	d, err := DirFromDelta(dx, dy)
	if err != nil {
		return false, err
	}
	return b.canMove(id, d), nil
}

// canMove applies the legality rules to every cell of the piece:
//   - leaving the board is forbidden;
//   - only the heart may enter a special wall;
//   - entering itself, a space or a goal is allowed;
//   - anything else blocks the whole move.
func (b *Board) canMove(id PieceID, d Dir) bool {
	if !b.HasPiece(id) {
		return false
	}
	cells := b.grid.CoordsOf(PieceCell(id))
	if len(cells) == 0 {
		return false
	}

	for _, p := range cells {
		dest := b.grid.Get(p.Step(d))
		switch {
		case dest.Kind == KindNone:
			return false
		case dest.Kind == KindSpecialWall && id == HeartID:
			continue
		case dest.Holds(id), dest.Kind == KindSpace, dest.Kind == KindGoal:
			continue
		default:
			return false
		}
	}
	return true
}

// PossibleMoves returns the legal directions for a piece in the order
// right, down, left, up.
func (b *Board) PossibleMoves(id PieceID) []Dir {
	var moves []Dir
	for _, d := range Dirs {
		if b.canMove(id, d) {
			moves = append(moves, d)
		}
	}
	return moves
}

// ApplyMove slides piece id one cell by (dx, dy).
// It returns the special walls the heart opened with this move, in board order.
func (b *Board) ApplyMove(id PieceID, dx, dy int) ([]Coord, error) {
	d, err := DirFromDelta(dx, dy)
	if err != nil {
		return nil, err
	}
	return b.Move(id, d)
}

// Move is ApplyMove with a typed direction.
func (b *Board) Move(id PieceID, d Dir) ([]Coord, error) {
	if d > DirUp {
		return nil, &InvalidDirectionError{}
	}
	if !b.canMove(id, d) {
		return nil, &IllegalMoveError{Piece: b.pieceLabel(id), Dir: d}
	}
	return b.apply(id, d), nil
}

// ApplyOnlyMove moves a piece in its single legal direction.
// It fails with *NoMoveAvailableError when the piece cannot move and with
// *AmbiguousMoveError when more than one direction is legal.
func (b *Board) ApplyOnlyMove(id PieceID) (Dir, []Coord, error) {
	moves := b.PossibleMoves(id)
	switch len(moves) {
	case 0:
		return 0, nil, &NoMoveAvailableError{Piece: b.pieceLabel(id)}
	case 1:
		return moves[0], b.apply(id, moves[0]), nil
	default:
		return 0, nil, &AmbiguousMoveError{Piece: b.pieceLabel(id), Moves: moves}
	}
}

// apply builds the next grid and commits it. The move must be legal.
func (b *Board) apply(id PieceID, d Dir) []Coord {
	next := b.grid.Clone()
	piece := PieceCell(id)

	cells := b.grid.CoordsOf(piece)
	for _, p := range cells {
		next.Set(p, SpaceCell)
	}
	for _, p := range cells {
		next.Set(p.Step(d), piece)
	}

	for _, p := range b.goals {
		if next.Get(p) == SpaceCell {
			next.Set(p, GoalCell)
		}
	}

	var closed, opened []Coord
	for _, p := range b.specialWalls {
		switch cell := next.Get(p); {
		case cell == SpaceCell:
			next.Set(p, SpecialWallCell)
			closed = append(closed, p)
		case cell.IsHeart():
			opened = append(opened, p)
		default:
			closed = append(closed, p)
		}
	}

	b.grid = next
	b.specialWalls = closed

	observers := append([]observer(nil), b.observers...)
	for _, p := range opened {
		for _, o := range observers {
			o.fn(p)
		}
	}
	return opened
}

func (b *Board) pieceLabel(id PieceID) string {
	if name := b.PieceName(id); name != "" {
		return name
	}
	return "#" + strconv.Itoa(int(id))
}
