package core

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrLevelFormat      = errors.New("malformed level")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrIllegalMove      = errors.New("illegal move")
	ErrNoMoveAvailable  = errors.New("no move available")
	ErrAmbiguousMove    = errors.New("ambiguous move")
)

// LevelFormatError reports a malformed or structurally invalid board.
// Line is the 1-based source line, or 0 when the board was not built from text.
// Row is the 1-based row of the board at fault, or 0 for board-wide problems.
type LevelFormatError struct {
	Board   string
	Line    int
	Row     int
	Message string
}

func (e *LevelFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("level %q (line %d): %s", e.Board, e.Line, e.Message)
	}
	return fmt.Sprintf("level %q: %s", e.Board, e.Message)
}

func (e *LevelFormatError) Is(target error) bool {
	return target == ErrLevelFormat
}

// InvalidDirectionError reports a direction that is not a unit vector.
type InvalidDirectionError struct {
	DX, DY int
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("invalid direction (%d,%d): want a unit vector", e.DX, e.DY)
}

func (e *InvalidDirectionError) Is(target error) bool {
	return target == ErrInvalidDirection
}

// IllegalMoveError reports a move that fails the legality check.
type IllegalMoveError struct {
	Piece string
	Dir   Dir
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("piece %q cannot move %s", e.Piece, e.Dir)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// NoMoveAvailableError is returned by the zero-argument move when the piece is stuck.
type NoMoveAvailableError struct {
	Piece string
}

func (e *NoMoveAvailableError) Error() string {
	return fmt.Sprintf("piece %q has no possible move", e.Piece)
}

func (e *NoMoveAvailableError) Is(target error) bool {
	return target == ErrNoMoveAvailable
}

// AmbiguousMoveError is returned by the zero-argument move when several moves are legal.
type AmbiguousMoveError struct {
	Piece string
	Moves []Dir
}

func (e *AmbiguousMoveError) Error() string {
	return fmt.Sprintf("piece %q has %d possible moves %v", e.Piece, len(e.Moves), e.Moves)
}

func (e *AmbiguousMoveError) Is(target error) bool {
	return target == ErrAmbiguousMove
}
