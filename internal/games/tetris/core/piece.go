package core

import (
	"math"
	"time"
)

// Rotation is the direction of a 90 degree turn.
type Rotation int8

const (
	Clockwise        Rotation = -1
	Counterclockwise Rotation = 1
)

// Direction is a horizontal shift direction.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

// Center is the anchor of a piece. Row is continuous so gravity can move
// a piece by fractions of a cell; Column only ever moves by whole cells.
type Center struct {
	Row    float64
	Column HalfStep
}

// Mino is one block of a piece, stored as an offset from the piece center.
type Mino struct {
	X HalfStep
	Y HalfStep
}

// NewMino creates a mino from real offsets, quantized to half steps.
func NewMino(x, y float64) Mino {
	return Mino{X: HalfStepOf(x), Y: HalfStepOf(y)}
}

var (
	quarterCos = math.Cos(math.Pi / 2)
	quarterSin = math.Sin(math.Pi / 2)
)

// rotate turns the offset about the center and re-quantizes the result.
func (m Mino) rotate(r Rotation) Mino {
	cos := quarterCos * float64(r)
	sin := quarterSin * float64(r)
	x, y := m.X.Float(), m.Y.Float()
	return Mino{
		X: HalfStepOf(x*cos - y*sin),
		Y: HalfStepOf(x*sin + y*cos),
	}
}

// Cell is an integer grid coordinate. Row 0 is the bottom of the field.
type Cell struct {
	Row    int
	Column int
}

// Piece is a falling tetromino. It is a value type: every transform
// returns a new piece so callers can validate before committing.
type Piece struct {
	Kind   Kind
	Center Center
	Minoes [4]Mino
}

// Rotate turns all four minoes by 90 degrees about the center.
func (p Piece) Rotate(r Rotation) Piece {
	for i, m := range p.Minoes {
		p.Minoes[i] = m.rotate(r)
	}
	return p
}

// Shift moves the piece one whole cell left or right.
func (p Piece) Shift(d Direction) Piece {
	p.Center.Column = p.Center.Column.Add(HalfStep(2 * d))
	return p
}

// Fall integrates gravity: the row drops by speed (cells per second) times elapsed.
func (p Piece) Fall(speed float64, elapsed time.Duration) Piece {
	p.Center.Row -= speed * elapsed.Seconds()
	return p
}

// Snap maps each mino onto the grid cell containing center+offset.
// Flooring (not rounding) keeps sub-cell drift on the cell the piece has reached.
func (p Piece) Snap() [4]Cell {
	var cells [4]Cell
	column := p.Center.Column.Float()
	for i, m := range p.Minoes {
		cells[i] = Cell{
			Row:    int(math.Floor(p.Center.Row + m.Y.Float())),
			Column: int(math.Floor(column + m.X.Float())),
		}
	}
	return cells
}
