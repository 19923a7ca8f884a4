// Package tetris adapts the gameplay core to the platform: it maps input
// actions to intents, owns pause, restart and top-out policy, and renders
// the board into a screen buffer.
package tetris

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// maxElapsed caps a single tick; longer gaps (suspended process, stalled
// terminal) are truncated.
const maxElapsed = 250 * time.Millisecond

// Game implements Tetris on top of the gameplay core.
type Game struct {
	cfg   config.TetrisConfig
	rng   *rand.Rand
	state *core.Tetris

	tick   uint64
	lines  int
	pieces int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a Tetris game with the given configuration.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = core.New(g.rng, g.cfg.CorePhysics())
	g.tick = 0
	g.lines = 0
	g.pieces = 1
	g.gameOver = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the game state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < requiredWidth(g.cfg.Display.ShowNext) || height < requiredHeight
}

// Step advances the game by one tick of the given duration.
func (g *Game) Step(in platformcore.InputFrame, elapsed time.Duration) platformcore.StepResult {
	g.tick++

	// Handle restart
	if in.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	return g.Autoplay(FramePlayer{Frame: in}, elapsed)
}

// Autoplay advances the game by one tick with intents from any player.
// It skips the pause and window checks so headless runs are not affected
// by the screen size.
func (g *Game) Autoplay(p core.Player, elapsed time.Duration) platformcore.StepResult {
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if elapsed < 0 {
		elapsed = 0
	}
	elapsed = min(elapsed, maxElapsed)

	res := g.state.Advance(elapsed, p)
	if res.Locked {
		g.lines += res.Cleared
		g.pieces++
		// A fresh piece that already overlaps the stack ends the game.
		if g.state.Blocked() {
			g.gameOver = true
		}
	}

	return platformcore.StepResult{
		State:   g.State(),
		Locked:  res.Locked,
		Cleared: res.Cleared,
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Core exposes the underlying gameplay state for read-only inspection.
func (g *Game) Core() *core.Tetris {
	return g.state
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	falling := g.state.Falling()
	b.WriteString(fmt.Sprintf("Tick: %d, Lines: %d, Pieces: %d\n", g.tick, g.lines, g.pieces))
	b.WriteString(fmt.Sprintf("Falling: %s at (%.2f, %s), Cells: %v\n",
		falling.Kind, falling.Center.Row, falling.Center.Column, g.state.FallingCells()))
	b.WriteString(fmt.Sprintf("Next: %v\n", g.state.Upcoming()))
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.gameOver, g.paused))
	return b.String()
}
