package registry

import "github.com/vovakirdan/tui-klotski/internal/core"

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the identifier used for score storage (the pack ID).
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the session on cfg.Board.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}
