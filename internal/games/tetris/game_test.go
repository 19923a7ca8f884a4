package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const frame = time.Second / 60

func newGame(seed int64) *Game {
	g := New(config.DefaultTetrisConfig())
	g.Reset(platformcore.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newGame(12345)
	g2 := newGame(12345)

	input := platformcore.NewInputFrame()
	for i := 0; i < 2000; i++ {
		input.Clear()
		switch i % 37 {
		case 3:
			input.Set(platformcore.ActionLeft)
		case 11:
			input.Set(platformcore.ActionRotateCW)
		case 19:
			input.Set(platformcore.ActionRight)
			input.Set(platformcore.ActionRight)
		case 29:
			input.Set(platformcore.ActionSoftDrop)
		}

		g1.Step(input, frame)
		g2.Step(input, frame)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPauseStopsGravity(t *testing.T) {
	g := newGame(1)
	before := g.Core().Falling()

	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionPause)
	g.Step(input, frame)

	if !g.State().Paused {
		t.Fatal("Expected game to be paused")
	}

	input.Clear()
	for iter := 0; iter < 60; iter++ {
		g.Step(input, frame)
	}
	if g.Core().Falling() != before {
		t.Error("Piece should not move while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("Snapshot state = %s, expected %s", g.Snapshot().State, StatePaused)
	}
}

func TestElapsedIsCapped(t *testing.T) {
	g := newGame(1)
	row := g.Core().Falling().Center.Row

	g.Step(platformcore.NewInputFrame(), time.Hour)

	fallen := row - g.Core().Falling().Center.Row
	expected := config.DefaultTetrisConfig().Physics.FallSpeed * maxElapsed.Seconds()
	if fallen < expected-1e-9 || fallen > expected+1e-9 {
		t.Errorf("Piece fell %v rows, expected %v", fallen, expected)
	}
}

func TestTopOutEndsGame(t *testing.T) {
	g := newGame(7)
	input := platformcore.NewInputFrame()
	input.Set(platformcore.ActionHardDrop)

	// Dropping every piece straight down stacks the middle columns to the top.
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(input, frame)
	}

	if !g.State().GameOver {
		t.Fatal("Expected game over after stacking pieces in the middle")
	}
	if !g.Core().Blocked() {
		t.Error("Game over should only be declared for a blocked spawn")
	}

	// Input is ignored after game over
	snap := g.Snapshot()
	g.Step(input, frame)
	if g.Snapshot().Pieces != snap.Pieces {
		t.Error("No pieces should lock after game over")
	}

	// Restart clears the board
	restart := platformcore.NewInputFrame()
	restart.Set(platformcore.ActionRestart)
	g.Step(restart, frame)
	if g.State().GameOver {
		t.Error("Restart should clear game over")
	}
	if g.Core().Grid() != (core.Grid{}) {
		t.Error("Restart should start from an empty grid")
	}
}

func TestFramePlayerMapsActions(t *testing.T) {
	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionPause)
	in.Set(platformcore.ActionRight)
	in.Set(platformcore.ActionRotateCCW)
	in.Set(platformcore.ActionSoftDrop)

	got := FramePlayer{Frame: in}.Intents()
	expected := core.Intents{core.ShiftRight, core.RotateCounterclockwise, core.SoftDrop}

	if len(got) != len(expected) {
		t.Fatalf("Intents() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Intents()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestRenderShowsBoardAndPreview(t *testing.T) {
	g := newGame(3)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Tetris") {
		t.Error("HUD should contain the title")
	}
	if !strings.Contains(out, "NEXT") {
		t.Error("Preview should be drawn when show_next is enabled")
	}

	// The falling piece is drawn in its kind color inside the board.
	boardX := (80 - requiredWidth(true)) / 2
	kind := g.Core().Falling().Kind
	for _, c := range g.Core().FallingCells() {
		x, y := boardCell(boardX, hudHeight, c.Row, c.Column)
		cell := screen.GetCell(x, y)
		if cell.Rune != '█' || cell.Color != kindColors[kind] {
			t.Errorf("Falling cell %v rendered as %+v", c, cell)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	g.Reset(platformcore.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	row := g.Core().Falling().Center.Row
	g.Step(platformcore.NewInputFrame(), frame)
	if g.Core().Falling().Center.Row != row {
		t.Error("Game should not advance while the window is too small")
	}

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected window-too-small overlay")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State after resize = %s, expected %s", g.Snapshot().State, StatePlaying)
	}
}

func TestPreviewCellsNormalized(t *testing.T) {
	for _, kind := range core.Kinds {
		for _, c := range previewCells(kind) {
			if c.Row < 0 || c.Row > 1 || c.Column < 0 || c.Column > 3 {
				t.Errorf("%s preview cell %v outside 2x4 box", kind, c)
			}
		}
	}
}

func TestAutoplayIgnoresWindowSize(t *testing.T) {
	g := New(config.DefaultTetrisConfig())
	g.Reset(platformcore.RuntimeConfig{Seed: 9})

	script := core.NewScripted(core.Intents{core.HardDrop})
	res := g.Autoplay(script, frame)

	if !res.Locked {
		t.Fatal("Hard drop should lock even when no screen is attached")
	}
	if g.Snapshot().Pieces != 2 {
		t.Errorf("Pieces = %d, expected 2", g.Snapshot().Pieces)
	}
}
