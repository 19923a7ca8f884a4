package core

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindO Kind = iota
	KindI
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// Kinds lists every piece kind in catalog order.
var Kinds = [KindCount]Kind{KindO, KindI, KindT, KindL, KindJ, KindS, KindZ}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// shape is the static spawn data for one kind.
type shape struct {
	row    float64
	column float64
	minoes [4][2]float64 // (x, y) offsets from the center
}

// catalog holds spawn centers near the top of the field and block offsets.
// O and I sit on half-cell centers so all their blocks land on cell boundaries.
var catalog = [KindCount]shape{
	KindO: {row: 18.5, column: 4.5, minoes: [4][2]float64{{-0.5, 0.5}, {0.5, 0.5}, {0.5, -0.5}, {-0.5, -0.5}}},
	KindI: {row: 17.5, column: 4.5, minoes: [4][2]float64{{-1.5, 0.5}, {-0.5, 0.5}, {0.5, 0.5}, {1.5, 0.5}}},
	KindT: {row: 18, column: 4, minoes: [4][2]float64{{0, 0}, {-1, 0}, {0, 1}, {1, 0}}},
	KindL: {row: 18, column: 4, minoes: [4][2]float64{{0, 0}, {-1, 0}, {1, 0}, {1, 1}}},
	KindJ: {row: 18, column: 4, minoes: [4][2]float64{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}}},
	KindS: {row: 18, column: 4, minoes: [4][2]float64{{0, 0}, {-1, 0}, {0, 1}, {1, 1}}},
	KindZ: {row: 18, column: 4, minoes: [4][2]float64{{0, 0}, {0, 1}, {-1, 1}, {1, 0}}},
}

// Spawn creates a piece of the given kind at its spawn position.
func Spawn(kind Kind) Piece {
	s := catalog[kind]
	p := Piece{
		Kind: kind,
		Center: Center{
			Row:    s.row,
			Column: HalfStepOf(s.column),
		},
	}
	for i, m := range s.minoes {
		p.Minoes[i] = NewMino(m[0], m[1])
	}
	return p
}
