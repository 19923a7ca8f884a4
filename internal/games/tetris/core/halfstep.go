// Package core provides the gameplay rules for Tetris: piece geometry,
// rotation, collision checks, locking, line clearing and piece sequencing.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import (
	"fmt"
	"math"
)

// HalfStep is a fixed-point scalar counting halves of a grid cell.
// Piece-local coordinates use it so repeated rotations never drift.
type HalfStep int8

// HalfStepOf converts a real number to the nearest half.
// The doubled magnitude is rounded half away from zero and the sign is
// reapplied afterwards, so HalfStepOf(-x) == -HalfStepOf(x) for every x.
func HalfStepOf(x float64) HalfStep {
	halves := HalfStep(math.Round(math.Abs(x) * 2))
	if x < 0 {
		return -halves
	}
	return halves
}

// Float returns the real value of the half step.
func (h HalfStep) Float() float64 {
	return float64(h) / 2
}

// Add returns the exact sum of two half steps.
func (h HalfStep) Add(other HalfStep) HalfStep {
	return h + other
}

// String returns the real value, e.g. "1.5".
func (h HalfStep) String() string {
	return fmt.Sprintf("%g", h.Float())
}
