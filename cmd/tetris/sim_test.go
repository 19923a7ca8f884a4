package main

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	tetriscore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const frame = time.Second / 60

func newSimGame() *tetris.Game {
	g := tetris.New(config.DefaultTetrisConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60, Seed: 11})
	return g
}

// hardDropper hard-drops every piece, topping out after a few dozen ticks.
type hardDropper struct{}

func (hardDropper) Intents() tetriscore.Intents {
	return tetriscore.Intents{tetriscore.HardDrop}
}

func TestSimulateCountsGameOverTick(t *testing.T) {
	game := newSimGame()
	ticks := simulate(game, hardDropper{}, frame, 1000, log.New(io.Discard))

	if !game.State().GameOver {
		t.Fatal("Expected the stack to top out")
	}
	// Every tick hard-drops one piece; the first piece was spawned by Reset.
	if pieces := game.Snapshot().Pieces; ticks != pieces-1 {
		t.Errorf("simulate() = %d ticks, expected %d (one per locked piece)", ticks, pieces-1)
	}
}

func TestSimulateStopsAtBudget(t *testing.T) {
	game := newSimGame()
	ticks := simulate(game, tetriscore.NewScripted(), frame, 30, log.New(io.Discard))

	if ticks != 30 {
		t.Errorf("simulate() = %d ticks, expected 30", ticks)
	}
	if game.State().GameOver {
		t.Error("Half a second of gravity should not end the game")
	}
}
