package tui

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is the contract between the terminal shell and a playable game.
type Game interface {
	// ID returns a stable identifier for the game.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new game with the given runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Resize updates the screen dimensions without restarting.
	Resize(width, height int)

	// Step advances the simulation by elapsed wall time with one frame of input.
	Step(in core.InputFrame, elapsed time.Duration) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
