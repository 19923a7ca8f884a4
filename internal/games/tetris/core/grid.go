package core

import "fmt"

// Playfield dimensions.
const (
	Rows    = 20
	Columns = 10
)

// CellState is the occupancy of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Filled
)

// Validity is the result of checking a piece against the grid.
type Validity bool

const (
	Valid   Validity = true
	Invalid Validity = false
)

// String returns "valid" or "invalid".
func (v Validity) String() string {
	if v == Valid {
		return "valid"
	}
	return "invalid"
}

// Grid is the playfield of locked cells. Row 0 is the bottom.
// The falling piece is never stored here until it locks.
type Grid struct {
	cells [Rows][Columns]CellState
}

// InBounds reports whether the cell lies inside the playfield.
func InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < Rows && c.Column >= 0 && c.Column < Columns
}

// At returns the state of the cell at (row, column).
// Cells outside the playfield report Filled, since nothing can go there.
func (g Grid) At(row, column int) CellState {
	if !InBounds(Cell{Row: row, Column: column}) {
		return Filled
	}
	return g.cells[row][column]
}

// RowFilled reports whether every column of the row is filled.
func (g Grid) RowFilled(row int) bool {
	if row < 0 || row >= Rows {
		return false
	}
	return rowFilled(g.cells[row])
}

// Validate checks that all four snapped cells are inside the field and empty.
func (g Grid) Validate(p Piece) Validity {
	for _, c := range p.Snap() {
		if !InBounds(c) || g.cells[c.Row][c.Column] == Filled {
			return Invalid
		}
	}
	return Valid
}

// Solidify returns a copy of the grid with the piece's cells filled.
// The piece must have been validated first; an out-of-field cell panics.
func (g Grid) Solidify(p Piece) Grid {
	for _, c := range p.Snap() {
		if !InBounds(c) {
			panic(fmt.Sprintf("core: solidify %s piece outside the field at (%d, %d)", p.Kind, c.Row, c.Column))
		}
		g.cells[c.Row][c.Column] = Filled
	}
	return g
}

// ClearLines removes every complete row in a single sweep. Rows above a
// cleared row move down by one and the top row becomes empty.
// Returns the new grid and the number of rows removed.
func (g Grid) ClearLines() (Grid, int) {
	n := clearLines(g.cells[:])
	return g, n
}

// clearLines finds the lowest full row, clears everything above it first,
// then drops the rest of the stack over it.
func clearLines(rows [][Columns]CellState) int {
	for i := range rows {
		if !rowFilled(rows[i]) {
			continue
		}
		cleared := clearLines(rows[i+1:])
		copy(rows[i:], rows[i+1:])
		rows[len(rows)-1] = [Columns]CellState{}
		return cleared + 1
	}
	return 0
}

func rowFilled(row [Columns]CellState) bool {
	for _, c := range row {
		if c != Filled {
			return false
		}
	}
	return true
}

// Occupancy returns a read-only copy of the grid for rendering.
// Index as [row][column] with row 0 at the bottom.
func (g Grid) Occupancy() [Rows][Columns]bool {
	var out [Rows][Columns]bool
	for r := range g.cells {
		for c := range g.cells[r] {
			out[r][c] = g.cells[r][c] == Filled
		}
	}
	return out
}
