package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfStepOf(t *testing.T) {
	tests := []struct {
		in       float64
		expected HalfStep
	}{
		{0, 0},
		{0.24, 0},
		{0.25, 1},
		{0.26, 1},
		{0.6, 1},
		{0.74, 1},
		{0.75, 2},
		{1.5, 3},
		{-0.24, 0},
		{-0.25, -1},
		{-0.26, -1},
		{-0.6, -1},
		{-1.5, -3},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, HalfStepOf(tc.in), "HalfStepOf(%v)", tc.in)
	}
}

func TestHalfStepFloat(t *testing.T) {
	assert.Equal(t, 0.5, HalfStep(1).Float())
	assert.Equal(t, -1.5, HalfStep(-3).Float())
	assert.Equal(t, 4.5, HalfStepOf(4.5).Float())
}

func TestHalfStepAddIsExact(t *testing.T) {
	h := HalfStepOf(4.5)
	for i := 0; i < 50; i++ {
		h = h.Add(2)
	}
	for i := 0; i < 50; i++ {
		h = h.Add(-2)
	}
	assert.Equal(t, HalfStepOf(4.5), h)
	assert.Equal(t, "4.5", h.String())
}
