package klotski

import (
	"fmt"
	"strings"
	"time"

	platformcore "github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

const (
	hudHeight    = 2 // Title and status lines
	footerHeight = 2 // Message and controls lines
)

const controlsHint = "arrows slide  tab piece  space auto  u undo  ^r redo  r reset  n next  q quit"

// cellWidth is the number of columns one board cell takes on screen.
func (g *Game) cellWidth() int {
	if g.board == nil {
		return g.minCellWidth
	}
	return platformcore.Max(g.minCellWidth, g.board.MaxIDWidth()+1)
}

// Render draws the session to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.board == nil {
		dst.DrawTextCentered(g.screenH/2, g.message, g.theme.Text)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	frame := g.renderBoard(dst)
	g.renderFooter(dst)

	if g.paused {
		mid := frame.Y + frame.H/2
		dst.DrawTextCentered(mid, " PAUSED ", g.theme.Selected)
	}
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", g.theme.Text)
	dst.DrawTextCentered(y+1, "Please resize terminal", g.theme.Hint)
}

// renderHUD draws the board title and the move counter.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	title := fmt.Sprintf("%s  %s (%d/%d)", g.Title(), g.board.Name(), g.index+1, len(g.pack.Boards))
	dst.DrawTextCentered(0, title, g.theme.Text)

	piece := ""
	if id, ok := g.SelectedPiece(); ok {
		piece = g.board.PieceName(id)
	}
	status := fmt.Sprintf("Moves: %d   Time: %s   Piece: %s", g.history.Moves(), FormatDuration(g.elapsed), piece)
	if g.solved {
		status += "   SOLVED"
	}
	dst.DrawTextCentered(1, status, g.theme.Hint)
}

// renderBoard draws the grid inside a frame centered in the play area.
func (g *Game) renderBoard(dst *platformcore.Screen) platformcore.Rect {
	cw := g.cellWidth()
	area := platformcore.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight-footerHeight)
	frame := area.CenterIn(g.board.Width()*cw+2, g.board.Height()+2)
	dst.DrawBox(frame, g.theme.Frame)

	selected, _ := g.SelectedPiece()
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			text, color := g.cellText(g.board.CellAt(x, y), selected, cw)
			dst.DrawTextColored(frame.X+1+x*cw, frame.Y+1+y, text, color)
		}
	}
	return frame
}

// cellText returns the fixed-width text and color of one cell.
func (g *Game) cellText(c core.Cell, selected core.PieceID, cw int) (string, platformcore.Color) {
	color := g.theme.CellColor(c)
	switch c.Kind {
	case core.KindWall, core.KindBorder:
		return strings.Repeat("█", cw), color
	case core.KindSpecialWall:
		return strings.Repeat("▒", cw), color
	case core.KindGoal:
		return fmt.Sprintf("%*s", cw, "·"), color
	case core.KindPiece:
		if c.Piece == selected {
			color = g.theme.Selected
		}
		return fmt.Sprintf("%*s", cw, g.board.CellLabel(c)), color
	default:
		return strings.Repeat(" ", cw), color
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	msg := g.message
	if msg == "" && g.solved {
		msg = "Solved! n: next board  r: play again"
	}
	dst.DrawTextCentered(g.screenH-2, msg, g.theme.Text)
	if g.showHelp {
		dst.DrawTextCentered(g.screenH-1, controlsHint, g.theme.Hint)
	}
}

// FormatDuration renders a play time as m:ss.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
