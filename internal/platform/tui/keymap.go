package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klotski/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// defaultBindings covers arrows, wasd and vim keys for sliding.
var defaultBindings = map[string]core.Action{
	"up":    core.ActionUp,
	"w":     core.ActionUp,
	"k":     core.ActionUp,
	"down":  core.ActionDown,
	"s":     core.ActionDown,
	"j":     core.ActionDown,
	"left":  core.ActionLeft,
	"a":     core.ActionLeft,
	"h":     core.ActionLeft,
	"right": core.ActionRight,
	"d":     core.ActionRight,
	"l":     core.ActionRight,

	"tab":       core.ActionNextPiece,
	"shift+tab": core.ActionPrevPiece,
	" ":         core.ActionAuto,
	"enter":     core.ActionAuto,

	"u":      core.ActionUndo,
	"ctrl+z": core.ActionUndo,
	"ctrl+r": core.ActionRedo,
	"ctrl+y": core.ActionRedo,
	"r":      core.ActionRestart,

	"n":      core.ActionNextLevel,
	"pgdown": core.ActionNextLevel,
	"N":      core.ActionPrevLevel,
	"pgup":   core.ActionPrevLevel,
	"p":      core.ActionPause,
	"esc":    core.ActionBack,
	"b":      core.ActionBack,
	"q":      core.ActionQuit,
	"ctrl+c": core.ActionQuit,
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: defaultBindings}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionPrevPack
	MenuActionNextPack
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionPrevPack
	case "d", "right", "l":
		return MenuActionNextPack
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
