package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
	Board    int // Index of the board to start on
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// TickDuration returns the wall time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Pack       string        // Pack being played
	Board      string        // Current board name
	BoardIndex int           // Index of the board in its pack
	Moves      int           // Counted moves on the current board
	Elapsed    time.Duration // Play time on the current board
	Solved     bool          // Whether the heart covers every goal
	Paused     bool          // Whether the clock is stopped
}

// Solve describes a finished board, ready to be stored.
type Solve struct {
	Pack     string
	Board    string
	Moves    int
	Duration time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Solve is set on the tick the board becomes solved.
	Solve *Solve
	// Message is a short status line, empty when nothing happened.
	Message string
}
