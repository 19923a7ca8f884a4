package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Lines    int
	Pieces   int
	Kind     core.Kind
	Cells    [4]core.Cell
	Upcoming [core.PreviewSize]core.Kind
	Grid     [core.Rows][core.Columns]bool
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	grid := g.state.Grid()
	return Snapshot{
		Tick:     g.tick,
		Lines:    g.lines,
		Pieces:   g.pieces,
		Kind:     g.state.Falling().Kind,
		Cells:    g.state.FallingCells(),
		Upcoming: g.state.Upcoming(),
		Grid:     grid.Occupancy(),
		State:    state,
	}
}
