package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// State returns a deep-copied snapshot of the engine.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Playfield: e.field.Rows(),
		Piece: core.PieceState{
			X:     e.piece.x,
			Y:     e.piece.y,
			Shape: e.piece.shape.Clone(),
		},
		Next: core.PieceState{
			Shape: ShapeOf(e.next),
		},
		GhostY:   e.GhostY(),
		Score:    e.score,
		Lines:    e.lines,
		Level:    e.level,
		GameOver: e.gameOver,
	}
}

// DebugState returns a string representation of the game state.
func (e *Engine) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d, Lines: %d, Level: %d, GameOver: %v\n", e.score, e.lines, e.level, e.gameOver)
	fmt.Fprintf(&b, "Piece: %s at (%d, %d), Next: %s\n", e.piece.kind, e.piece.x, e.piece.y, e.next)
	b.WriteString(e.field.String())
	return b.String()
}
