package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-klotski/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(2, 1, "red", core.ColorRed)
	s.DrawTextColored(6, 1, "gray", core.ColorGray)
	s.SetColored(11, 2, '*', core.Color(200))

	if got, want := ansi.Strip(RenderScreen(s)), s.String(); got != want {
		t.Errorf("styled output should carry the same text:\nexpected %q\ngot      %q", want, got)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown colors should render unstyled, got %q", got)
	}
	if len(colorStyles) != len(ansiCodes)+1 {
		t.Errorf("expected one style per color plus the default, got %d", len(colorStyles))
	}
}
