package klotski

import "github.com/vovakirdan/tui-klotski/internal/games/klotski/core"

// turn is one counted move: a run of consecutive slides of the same piece.
type turn struct {
	piece  core.PieceID
	before core.Snapshot
	after  core.Snapshot
}

// History records counted moves for undo and redo.
//
// Slides of the piece that made the last move extend that move instead of
// counting a new one, until an undo, a redo or a different piece breaks the run.
type History struct {
	done     []turn
	undone   []turn
	extendOK bool
}

// Record registers a slide of piece that took the board from before to after.
// It reports whether the slide started a new counted move.
func (h *History) Record(piece core.PieceID, before, after core.Snapshot) bool {
	h.undone = h.undone[:0]

	if h.extendOK && len(h.done) > 0 && h.done[len(h.done)-1].piece == piece {
		h.done[len(h.done)-1].after = after
		return false
	}

	h.done = append(h.done, turn{piece: piece, before: before, after: after})
	h.extendOK = true
	return true
}

// Undo returns the state before the last counted move.
func (h *History) Undo() (core.Snapshot, bool) {
	if len(h.done) == 0 {
		return core.Snapshot{}, false
	}
	t := h.done[len(h.done)-1]
	h.done = h.done[:len(h.done)-1]
	h.undone = append(h.undone, t)
	h.extendOK = false
	return t.before, true
}

// Redo returns the state after the last undone move.
func (h *History) Redo() (core.Snapshot, bool) {
	if len(h.undone) == 0 {
		return core.Snapshot{}, false
	}
	t := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	h.done = append(h.done, t)
	h.extendOK = false
	return t.after, true
}

// Moves returns the number of counted moves on the undo stack.
func (h *History) Moves() int {
	return len(h.done)
}

// CanUndo reports whether there is a move to take back.
func (h *History) CanUndo() bool {
	return len(h.done) > 0
}

// CanRedo reports whether there is an undone move to replay.
func (h *History) CanRedo() bool {
	return len(h.undone) > 0
}

// Clear forgets every recorded move.
func (h *History) Clear() {
	h.done = nil
	h.undone = nil
	h.extendOK = false
}
