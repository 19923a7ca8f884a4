package core

import (
	"math/rand"
	"time"
)

// Physics holds the tunable fall parameters.
type Physics struct {
	FallSpeed          float64 // Cells per second
	SoftDropMultiplier float64 // Applied to FallSpeed while SoftDrop is held
	HardDrop           bool    // Whether HardDrop intents are honored
}

// DefaultPhysics returns the standard fall parameters.
func DefaultPhysics() Physics {
	return Physics{
		FallSpeed:          2.0,
		SoftDropMultiplier: 10.0,
		HardDrop:           true,
	}
}

// Result describes what happened during one Update.
type Result struct {
	Locked  bool // The falling piece landed and was committed
	Cleared int  // Rows removed by the lock
	Spawned Kind // Kind of the new falling piece, valid only when Locked
}

// Tetris owns the grid, the falling piece and the next queue.
type Tetris struct {
	physics Physics
	grid    Grid
	falling Piece
	queue   *NextQueue
}

// New creates a game with an empty grid and the first piece from a fresh queue.
func New(rng *rand.Rand, physics Physics) *Tetris {
	queue := NewNextQueue(rng)
	return &Tetris{
		physics: physics,
		queue:   queue,
		falling: Spawn(queue.Next()),
	}
}

// Advance runs one tick with the intents produced by player.
func (t *Tetris) Advance(elapsed time.Duration, player Player) Result {
	return t.Update(elapsed, player.Intents())
}

// Update advances the game by one tick.
//
// Intents are applied in order to a candidate piece; if the candidate is
// invalid it is discarded. Gravity is then applied to a second candidate.
// When that one is invalid too, the last valid piece locks, complete rows
// are cleared and the next piece spawns. The spawned piece is not
// validated; see Blocked.
func (t *Tetris) Update(elapsed time.Duration, intents Intents) Result {
	previous := t.falling
	candidate := t.falling

	speed := t.physics.FallSpeed
	hardDrop := false

	for _, intent := range intents {
		switch intent {
		case RotateClockwise:
			candidate = candidate.Rotate(Clockwise)
		case RotateCounterclockwise:
			candidate = candidate.Rotate(Counterclockwise)
		case ShiftLeft:
			candidate = candidate.Shift(Left)
		case ShiftRight:
			candidate = candidate.Shift(Right)
		case SoftDrop:
			speed *= t.physics.SoftDropMultiplier
		case HardDrop:
			hardDrop = t.physics.HardDrop
		}
	}

	if t.grid.Validate(candidate) == Invalid {
		candidate = previous
	}

	if hardDrop {
		// A piece that spawned onto the stack locks where it is.
		if t.grid.Validate(candidate) == Valid {
			candidate = t.dropToFloor(candidate)
		}
		return t.lock(candidate)
	}

	previous = candidate
	candidate = candidate.Fall(speed, elapsed)

	if t.grid.Validate(candidate) == Invalid {
		return t.lock(previous)
	}

	t.falling = candidate
	return Result{}
}

// dropToFloor moves the piece down one whole cell at a time while it stays valid.
func (t *Tetris) dropToFloor(p Piece) Piece {
	for {
		below := p
		below.Center.Row--
		if t.grid.Validate(below) == Invalid {
			return p
		}
		p = below
	}
}

// lock commits the piece, clears rows and spawns the next piece.
func (t *Tetris) lock(p Piece) Result {
	grid, cleared := t.grid.Solidify(p).ClearLines()
	t.grid = grid

	next := t.queue.Next()
	t.falling = Spawn(next)

	return Result{Locked: true, Cleared: cleared, Spawned: next}
}

// Blocked reports whether the falling piece overlaps the grid or leaves the
// field. This only happens right after a spawn onto locked cells; deciding
// what that means (usually game over) is up to the caller.
func (t *Tetris) Blocked() bool {
	return t.grid.Validate(t.falling) == Invalid
}

// Grid returns a copy of the locked cells.
func (t *Tetris) Grid() Grid {
	return t.grid
}

// Falling returns the current falling piece.
func (t *Tetris) Falling() Piece {
	return t.falling
}

// FallingCells returns the grid cells of the falling piece.
func (t *Tetris) FallingCells() [4]Cell {
	return t.falling.Snap()
}

// Upcoming returns the next kinds in deal order.
func (t *Tetris) Upcoming() [PreviewSize]Kind {
	return t.queue.Upcoming()
}
