// Package klotski provides the Klotski play session for the terminal platform.
package klotski

import (
	"errors"
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/levels"
	"github.com/vovakirdan/tui-klotski/internal/registry"
)

func init() {
	boards := 0
	if p, err := levels.Classic(); err == nil {
		boards = len(p.Boards)
	}
	registry.Register(registry.PackInfo{
		ID:     levels.ClassicID,
		Title:  "Classic",
		Boards: boards,
		Source: "builtin",
	}, levels.Classic)
}

// moveActions maps platform actions to slide directions.
var moveActions = []struct {
	action platformcore.Action
	dir    core.Dir
}{
	{platformcore.ActionRight, core.DirRight},
	{platformcore.ActionDown, core.DirDown},
	{platformcore.ActionLeft, core.DirLeft},
	{platformcore.ActionUp, core.DirUp},
}

// Game is a play session over one level pack.
type Game struct {
	pack  *levels.Pack
	index int
	board *core.Board

	pieces   []core.PieceID
	selected int
	history  History

	theme        Theme
	minCellWidth int
	showHelp     bool

	// Screen dimensions
	screenW int
	screenH int

	// Status
	tickSize time.Duration
	elapsed  time.Duration
	solved   bool
	paused   bool
	tooSmall bool
	message  string

	unsubscribe func()
}

// New creates a session over pack.
func New(pack *levels.Pack, theme Theme) *Game {
	return &Game{
		pack:         pack,
		theme:        theme,
		minCellWidth: 2,
		showHelp:     true,
	}
}

// SetLayout sets the minimum columns per cell and whether the controls line is shown.
func (g *Game) SetLayout(cellWidth int, showHelp bool) {
	g.minCellWidth = platformcore.Max(1, cellWidth)
	g.showHelp = showHelp
	g.checkScreenSize()
}

// ID returns the pack identifier, used for score storage.
func (g *Game) ID() string {
	return g.pack.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.pack.Name != "" {
		return "Klotski: " + g.pack.Name
	}
	return "Klotski"
}

// Reset starts the session on cfg.Board, or the next playable board after it.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickSize = cfg.TickDuration()
	g.paused = false

	index := cfg.Board
	if b, ok := g.pack.Board(index); !ok || !b.Playable() {
		index = g.pack.NextPlayable(index)
	}
	g.load(index)
}

// load switches to the board at index and starts it fresh.
func (g *Game) load(index int) {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}

	g.board = nil
	g.pieces = nil
	g.index = index
	g.message = ""

	b, ok := g.pack.Board(index)
	if !ok {
		g.message = "No playable board in this pack"
		return
	}

	g.board = b
	g.unsubscribe = b.Subscribe(g.wallOpened)
	g.pieces = b.Pieces()
	g.selected = 0
	g.restart()
	g.checkScreenSize()
}

// restart puts the current board back to its start position.
func (g *Game) restart() {
	g.board.Reset()
	g.history.Clear()
	g.elapsed = 0
	g.solved = false
}

func (g *Game) wallOpened(at core.Coord) {
	g.message = fmt.Sprintf("The heart opened a door at %v", at)
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		g.tooSmall = false
		return
	}
	minW := g.board.Width()*g.cellWidth() + 2
	minH := g.board.Height() + hudHeight + footerHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts the session to new screen dimensions without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the session by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.board == nil {
		return platformcore.StepResult{State: g.State(), Message: g.message}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if !g.solved {
		g.elapsed += g.tickSize
	}
	if in.Empty() {
		return platformcore.StepResult{State: g.State(), Message: g.message}
	}
	g.message = ""

	var solve *platformcore.Solve
	switch {
	case in.Has(platformcore.ActionNextLevel):
		g.load(g.pack.NextPlayable(g.index))
	case in.Has(platformcore.ActionPrevLevel):
		g.load(g.pack.PrevPlayable(g.index))
	case in.Has(platformcore.ActionRestart):
		g.restart()
		g.message = "Board reset"
	case in.Has(platformcore.ActionUndo):
		g.Undo()
	case in.Has(platformcore.ActionRedo):
		g.Redo()
	default:
		solve = g.play(in)
	}

	return platformcore.StepResult{State: g.State(), Solve: solve, Message: g.message}
}

// play handles piece selection and slides.
func (g *Game) play(in platformcore.InputFrame) *platformcore.Solve {
	if g.solved {
		return nil
	}

	switch {
	case in.Has(platformcore.ActionNextPiece):
		g.cycle(1)
		return nil
	case in.Has(platformcore.ActionPrevPiece):
		g.cycle(-1)
		return nil
	case in.Has(platformcore.ActionAuto):
		if g.SlideOnly() {
			return g.checkSolved()
		}
		return nil
	}

	for _, m := range moveActions {
		if in.Has(m.action) {
			if g.Slide(m.dir) {
				return g.checkSolved()
			}
			return nil
		}
	}
	return nil
}

func (g *Game) cycle(delta int) {
	if len(g.pieces) == 0 {
		return
	}
	n := len(g.pieces)
	g.selected = ((g.selected+delta)%n + n) % n
}

// Slide moves the selected piece one cell in direction d.
// It reports whether the board changed.
func (g *Game) Slide(d core.Dir) bool {
	id, ok := g.SelectedPiece()
	if !ok {
		return false
	}

	before := g.board.Snapshot()
	if _, err := g.board.Move(id, d); err != nil {
		g.message = describeError(err)
		return false
	}
	g.history.Record(id, before, g.board.Snapshot())
	return true
}

// SlideOnly moves the selected piece in its single legal direction.
func (g *Game) SlideOnly() bool {
	id, ok := g.SelectedPiece()
	if !ok {
		return false
	}

	before := g.board.Snapshot()
	if _, _, err := g.board.ApplyOnlyMove(id); err != nil {
		g.message = describeError(err)
		return false
	}
	g.history.Record(id, before, g.board.Snapshot())
	return true
}

// checkSolved marks the board solved on the move that wins it.
func (g *Game) checkSolved() *platformcore.Solve {
	if g.solved || !g.board.IsWon() {
		return nil
	}
	g.solved = true
	g.message = fmt.Sprintf("Solved in %d moves!", g.history.Moves())
	return &platformcore.Solve{
		Pack:     g.pack.ID,
		Board:    g.board.Name(),
		Moves:    g.history.Moves(),
		Duration: g.elapsed,
	}
}

// Undo takes back the last counted move.
func (g *Game) Undo() bool {
	snap, ok := g.history.Undo()
	if !ok {
		g.message = "Nothing to undo"
		return false
	}
	g.board.Restore(snap)
	g.solved = g.board.IsWon()
	return true
}

// Redo replays the last undone move.
func (g *Game) Redo() bool {
	snap, ok := g.history.Redo()
	if !ok {
		g.message = "Nothing to redo"
		return false
	}
	g.board.Restore(snap)
	g.solved = g.board.IsWon()
	return true
}

// SelectPiece selects a piece by its display name.
func (g *Game) SelectPiece(name string) bool {
	if g.board == nil {
		return false
	}
	id, ok := g.board.PieceByName(name)
	if !ok {
		return false
	}
	for i, p := range g.pieces {
		if p == id {
			g.selected = i
			return true
		}
	}
	return false
}

// SelectedPiece returns the identity of the selected piece.
func (g *Game) SelectedPiece() (core.PieceID, bool) {
	if len(g.pieces) == 0 {
		return 0, false
	}
	return g.pieces[g.selected], true
}

// Board returns the board being played, or nil.
func (g *Game) Board() *core.Board {
	return g.board
}

// Message returns the current status line.
func (g *Game) Message() string {
	return g.message
}

// State returns the current session state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Pack:       g.pack.ID,
		BoardIndex: g.index,
		Moves:      g.history.Moves(),
		Elapsed:    g.elapsed,
		Solved:     g.solved,
		Paused:     g.paused,
	}
	if g.board != nil {
		st.Board = g.board.Name()
	}
	return st
}

func describeError(err error) string {
	var (
		illegal   *core.IllegalMoveError
		stuck     *core.NoMoveAvailableError
		ambiguous *core.AmbiguousMoveError
	)
	switch {
	case errors.As(err, &illegal):
		return fmt.Sprintf("%s cannot move %s", illegal.Piece, illegal.Dir)
	case errors.As(err, &stuck):
		return fmt.Sprintf("%s cannot move", stuck.Piece)
	case errors.As(err, &ambiguous):
		return fmt.Sprintf("%s can move %v, pick a direction", ambiguous.Piece, ambiguous.Moves)
	default:
		return err.Error()
	}
}
