package core

import "math/rand"

// Intent is a player command for one tick.
type Intent uint8

const (
	RotateClockwise Intent = iota
	RotateCounterclockwise
	ShiftLeft
	ShiftRight
	SoftDrop
	HardDrop
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case RotateClockwise:
		return "RotateClockwise"
	case RotateCounterclockwise:
		return "RotateCounterclockwise"
	case ShiftLeft:
		return "ShiftLeft"
	case ShiftRight:
		return "ShiftRight"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}

// Intents is the set of intents for one tick, kept in the order received.
// Adding an intent that is already present is a no-op.
type Intents []Intent

// Add appends the intent unless it is already in the set.
func (in Intents) Add(i Intent) Intents {
	if in.Has(i) {
		return in
	}
	return append(in, i)
}

// Has reports whether the intent is in the set.
func (in Intents) Has(i Intent) bool {
	for _, x := range in {
		if x == i {
			return true
		}
	}
	return false
}

// Player produces the intent set for each tick.
type Player interface {
	Intents() Intents
}

// Scripted replays a fixed list of per-tick intent sets, then produces
// nothing once the script runs out.
type Scripted struct {
	ticks []Intents
	tick  int
}

// NewScripted creates a player that replays ticks in order.
func NewScripted(ticks ...Intents) *Scripted {
	return &Scripted{ticks: ticks}
}

// Intents returns the next scripted intent set.
func (s *Scripted) Intents() Intents {
	if s.tick >= len(s.ticks) {
		return nil
	}
	in := s.ticks[s.tick]
	s.tick++
	return in
}

// Done reports whether the script has been fully replayed.
func (s *Scripted) Done() bool {
	return s.tick >= len(s.ticks)
}

// RandomPlayer presses a random intent on some ticks. Used for headless
// simulation and soak testing.
type RandomPlayer struct {
	rng      *rand.Rand
	pressPct int // chance (0-100) of producing an intent on a tick
	hardDrop bool
}

// NewRandomPlayer creates a seeded random player.
func NewRandomPlayer(rng *rand.Rand, pressPct int, hardDrop bool) *RandomPlayer {
	return &RandomPlayer{rng: rng, pressPct: pressPct, hardDrop: hardDrop}
}

// Intents returns zero or one random intent.
func (p *RandomPlayer) Intents() Intents {
	if p.rng.Intn(100) >= p.pressPct {
		return nil
	}
	n := HardDrop
	if p.hardDrop {
		n++
	}
	return Intents{Intent(p.rng.Intn(int(n)))}
}
