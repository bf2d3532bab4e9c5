package klotski

import (
	"fmt"

	"github.com/vovakirdan/tui-klotski/internal/config"
	platformcore "github.com/vovakirdan/tui-klotski/internal/core"
	"github.com/vovakirdan/tui-klotski/internal/games/klotski/core"
)

// Theme holds the colors used to draw a board.
type Theme struct {
	Heart       platformcore.Color
	Selected    platformcore.Color
	Wall        platformcore.Color
	SpecialWall platformcore.Color
	Goal        platformcore.Color
	Frame       platformcore.Color
	Text        platformcore.Color
	Hint        platformcore.Color
	Pieces      []platformcore.Color
}

// DefaultTheme returns the default board colors.
func DefaultTheme() Theme {
	return Theme{
		Heart:       platformcore.ColorBrightRed,
		Selected:    platformcore.ColorBrightWhite,
		Wall:        platformcore.ColorGray,
		SpecialWall: platformcore.ColorOrange,
		Goal:        platformcore.ColorYellow,
		Frame:       platformcore.ColorGray,
		Text:        platformcore.ColorDefault,
		Hint:        platformcore.ColorGray,
		Pieces:      platformcore.PieceColors,
	}
}

// pieceColor picks the rotation color of an ordinary piece.
func (t Theme) pieceColor(index int) platformcore.Color {
	if len(t.Pieces) == 0 {
		return platformcore.ColorDefault
	}
	return t.Pieces[index%len(t.Pieces)]
}

// CellColor returns the color a cell is drawn with when nothing is selected.
func (t Theme) CellColor(c core.Cell) platformcore.Color {
	switch c.Kind {
	case core.KindWall:
		return t.Wall
	case core.KindSpecialWall:
		return t.SpecialWall
	case core.KindGoal:
		return t.Goal
	case core.KindBorder:
		return t.Frame
	case core.KindPiece:
		if c.IsHeart() {
			return t.Heart
		}
		return t.pieceColor(int(c.Piece))
	default:
		return platformcore.ColorDefault
	}
}

// ThemeFromConfig resolves configured color names. Empty names keep the default.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	t := DefaultTheme()

	fields := []struct {
		key  string
		name string
		dst  *platformcore.Color
	}{
		{"heart", tc.Heart, &t.Heart},
		{"selected", tc.Selected, &t.Selected},
		{"wall", tc.Wall, &t.Wall},
		{"special_wall", tc.SpecialWall, &t.SpecialWall},
		{"goal", tc.Goal, &t.Goal},
		{"frame", tc.Frame, &t.Frame},
		{"text", tc.Text, &t.Text},
		{"hint", tc.Hint, &t.Hint},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, ok := platformcore.ParseColor(f.name)
		if !ok {
			return t, fmt.Errorf("theme: unknown color %q for %s", f.name, f.key)
		}
		*f.dst = c
	}

	if len(tc.Pieces) > 0 {
		t.Pieces = make([]platformcore.Color, 0, len(tc.Pieces))
		for _, name := range tc.Pieces {
			c, ok := platformcore.ParseColor(name)
			if !ok {
				return t, fmt.Errorf("theme: unknown piece color %q", name)
			}
			t.Pieces = append(t.Pieces, c)
		}
	}
	return t, nil
}
