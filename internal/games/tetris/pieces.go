package tetris

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PieceType identifies a tetromino. Its numeric value is what gets written
// into the playfield when a piece locks, so 0 is reserved for empty cells.
type PieceType int

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	pieceCount = int(PieceL)
)

// pieceShapes holds the spawn orientation of every piece. Filled cells carry
// the piece's own value.
var pieceShapes = map[PieceType][][]int{
	PieceI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	PieceO: {
		{2, 2},
		{2, 2},
	},
	PieceT: {
		{0, 3, 0},
		{3, 3, 3},
		{0, 0, 0},
	},
	PieceS: {
		{0, 4, 4},
		{4, 4, 0},
		{0, 0, 0},
	},
	PieceZ: {
		{5, 5, 0},
		{0, 5, 5},
		{0, 0, 0},
	},
	PieceJ: {
		{6, 0, 0},
		{6, 6, 6},
		{0, 0, 0},
	},
	PieceL: {
		{0, 0, 7},
		{7, 7, 7},
		{0, 0, 0},
	},
}

var pieceColors = map[PieceType]core.Color{
	PieceI: core.ColorCyan,
	PieceO: core.ColorYellow,
	PieceT: core.ColorMagenta,
	PieceS: core.ColorGreen,
	PieceZ: core.ColorRed,
	PieceJ: core.ColorBlue,
	PieceL: core.ColorOrange,
}

// ShapeOf returns a fresh copy of the piece's spawn shape.
func ShapeOf(p PieceType) Shape {
	rows, ok := pieceShapes[p]
	if !ok {
		return nil
	}
	return NewShape(rows)
}

// ColorOf maps a cell value to its display color.
func ColorOf(value int) core.Color {
	if c, ok := pieceColors[PieceType(value)]; ok {
		return c
	}
	return core.ColorWhite
}

// String returns the conventional letter for the piece.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "-"
	}
}

// randomPiece picks a piece uniformly.
func randomPiece(rng *rand.Rand) PieceType {
	return PieceType(1 + rng.Intn(pieceCount))
}
