package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextPiece, false},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionPrevPiece, false},
		{"space", runeKey(' '), core.ActionAuto, false},
		{"u", runeKey('u'), core.ActionUndo, false},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, core.ActionUndo, false},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRedo, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"n", runeKey('n'), core.ActionNextLevel, false},
		{"N", runeKey('N'), core.ActionPrevLevel, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("expected %v, got %v", tt.action, action)
			}
			if quit != tt.quit {
				t.Errorf("expected quit=%v, got %v", tt.quit, quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('u'), &frame) {
		t.Error("u should not quit")
	}
	if !frame.Has(core.ActionUndo) {
		t.Error("frame should hold Undo")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is not a game action and should stay out of the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionPrevPack},
		{runeKey('l'), MenuActionNextPack},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.msg.String(), tt.want, got)
		}
	}
}
