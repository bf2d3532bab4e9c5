package core

import "fmt"

// Coord represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Dir is one of the four unit directions a piece may slide in.
// The declaration order is the order PossibleMoves evaluates them.
type Dir uint8

const (
	DirRight Dir = iota
	DirDown
	DirLeft
	DirUp
)

// Dirs lists all directions in evaluation order: right, down, left, up.
var Dirs = [...]Dir{DirRight, DirDown, DirLeft, DirUp}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// DirFromDelta converts a unit vector to a direction.
// It fails with *InvalidDirectionError unless |dx|+|dy| == 1.
func DirFromDelta(dx, dy int) (Dir, error) {
	switch {
	case dx == 1 && dy == 0:
		return DirRight, nil
	case dx == 0 && dy == 1:
		return DirDown, nil
	case dx == -1 && dy == 0:
		return DirLeft, nil
	case dx == 0 && dy == -1:
		return DirUp, nil
	}
	return 0, &InvalidDirectionError{DX: dx, DY: dy}
}
