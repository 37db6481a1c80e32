// Package tetris implements the falling-block game engine: the playfield,
// the active piece, collision, rotation, locking and progression.
//
// The engine is synchronous and not safe for concurrent use. The controller
// owns it and calls into it from a single event loop.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// activePiece is the piece under player control. x and y anchor the
// top-left corner of its shape in playfield coordinates.
type activePiece struct {
	x, y  int
	kind  PieceType
	shape Shape
}

// Engine holds the complete game state.
type Engine struct {
	id    string
	title string

	cfg        config.BlockfallConfig
	difficulty *config.DifficultyManager
	permissive bool
	rng        *rand.Rand

	field *Playfield
	piece activePiece
	next  PieceType

	score    int
	lines    int
	level    int
	gameOver bool
}

// New creates an engine and starts a fresh game.
// The seed drives piece generation; equal seeds give equal sequences.
func New(cfg config.BlockfallConfig, seed int64) *Engine {
	e := &Engine{
		id:         "marathon",
		title:      "Marathon",
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		permissive: cfg.Rules.Movement == config.MovementPermissive,
		rng:        rand.New(rand.NewSource(seed)),
		field:      NewPlayfield(cfg.Playfield.Width, cfg.Playfield.Height),
	}
	e.Reset()
	return e
}

// ID returns the variant identifier.
func (e *Engine) ID() string {
	return e.id
}

// Title returns the display name.
func (e *Engine) Title() string {
	return e.title
}

// Reset empties the playfield, resets the counters and spawns a new piece.
// The level restarts at the configured start level, which is 0 unless a
// difficulty preset raised it.
func (e *Engine) Reset() {
	e.field.Clear()
	e.score = 0
	e.lines = 0
	e.level = e.difficulty.StartLevel()
	e.gameOver = false
	e.next = randomPiece(e.rng)
	e.SpawnPiece()
}

// MovePieceLeft moves the active piece one column left.
func (e *Engine) MovePieceLeft() bool {
	return e.move(-1, 0)
}

// MovePieceRight moves the active piece one column right.
func (e *Engine) MovePieceRight() bool {
	return e.move(1, 0)
}

// MovePieceDown moves the active piece one row down. It never locks; use
// Drop for a gravity step.
func (e *Engine) MovePieceDown() bool {
	return e.move(0, 1)
}

// move applies the configured movement policy. The permissive policy only
// checks the current position, so a piece that is still legal may step into
// a wall or onto locked cells.
func (e *Engine) move(dx, dy int) bool {
	if e.gameOver {
		return false
	}

	if e.permissive {
		if e.HasCollision() {
			return false
		}
	} else if e.collidesAt(e.piece.x+dx, e.piece.y+dy, e.piece.shape) {
		return false
	}

	e.piece.x += dx
	e.piece.y += dy
	return true
}

// RotatePiece rotates the active piece clockwise. If the rotated shape
// collides it is rotated back; there is no wall kick.
func (e *Engine) RotatePiece() bool {
	if e.gameOver {
		return false
	}

	e.piece.shape.RotateCW()
	if e.HasCollision() {
		e.piece.shape.RotateCCW()
		return false
	}
	return true
}

// HasCollision reports whether any filled cell of the active piece is
// outside the playfield or on a filled playfield cell.
func (e *Engine) HasCollision() bool {
	return e.collidesAt(e.piece.x, e.piece.y, e.piece.shape)
}

func (e *Engine) collidesAt(px, py int, shape Shape) bool {
	for y, row := range shape {
		for x, v := range row {
			if v != 0 && e.field.Blocked(px+x, py+y) {
				return true
			}
		}
	}
	return false
}

// LockPiece writes every filled cell of the active piece into the
// playfield with the cell's own value. Cells outside the field are dropped.
// It does not clear lines or spawn; Drop and HardDrop do that.
func (e *Engine) LockPiece() {
	e.piece.shape.Cells(func(x, y, v int) {
		e.field.Set(e.piece.x+x, e.piece.y+y, v)
	})
}

// ClearLines removes full rows and returns how many were removed.
func (e *Engine) ClearLines() int {
	return e.field.ClearFullRows()
}

// SpawnPiece makes the queued piece active at the spawn point and queues
// another. It returns false and ends the game if the new piece collides.
// An explicit spawn column is clamped so the whole shape starts inside the
// field.
func (e *Engine) SpawnPiece() bool {
	shape := ShapeOf(e.next)
	x := e.cfg.Playfield.SpawnX
	if x < 0 {
		x = (e.field.Width() - shape.Size()) / 2
	} else {
		x = core.Clamp(x, 0, e.field.Width()-shape.Size())
	}

	e.piece = activePiece{
		x:     x,
		y:     e.cfg.Playfield.SpawnY,
		kind:  e.next,
		shape: shape,
	}
	e.next = randomPiece(e.rng)

	if e.HasCollision() {
		e.gameOver = true
		return false
	}
	return true
}

// Drop runs one gravity step. When the piece cannot move down it is locked,
// full lines are cleared and scored, and the next piece spawns. Gravity
// always tests the row below, whatever the movement policy.
func (e *Engine) Drop() core.DropResult {
	if e.gameOver {
		return core.DropResult{GameOver: true}
	}

	if !e.collidesAt(e.piece.x, e.piece.y+1, e.piece.shape) {
		e.piece.y++
		return core.DropResult{Moved: true}
	}
	return e.lockCycle()
}

// SoftDrop is a player-requested Drop that awards soft drop points.
func (e *Engine) SoftDrop() core.DropResult {
	res := e.Drop()
	if res.Moved {
		e.score += e.cfg.Scoring.SoftDrop
	}
	return res
}

// HardDrop moves the piece as far down as it goes and locks it.
func (e *Engine) HardDrop() core.DropResult {
	if e.gameOver {
		return core.DropResult{GameOver: true}
	}

	rows := 0
	for !e.collidesAt(e.piece.x, e.piece.y+1, e.piece.shape) {
		e.piece.y++
		rows++
	}
	e.score += rows * e.cfg.Scoring.HardDrop

	res := e.lockCycle()
	res.Moved = rows > 0
	return res
}

// lockCycle locks the piece, clears and scores lines, updates the level and
// spawns the next piece.
func (e *Engine) lockCycle() core.DropResult {
	res := core.DropResult{Locked: true}

	e.LockPiece()
	res.Cleared = e.ClearLines()

	if res.Cleared > 0 {
		points := e.cfg.Scoring.LinePoints
		idx := min(res.Cleared, len(points)-1)
		e.score += points[idx] * (e.level + 1)
		e.lines += res.Cleared

		newLevel := e.difficulty.Level(e.lines)
		res.LevelUp = newLevel > e.level
		e.level = max(e.level, newLevel)
	}

	res.GameOver = !e.SpawnPiece()
	return res
}

// GhostY returns the row the active piece would land on.
func (e *Engine) GhostY() int {
	y := e.piece.y
	if e.HasCollision() {
		return y
	}
	for !e.collidesAt(e.piece.x, y+1, e.piece.shape) {
		y++
	}
	return y
}

// DropInterval returns the auto-drop interval for the current level.
func (e *Engine) DropInterval() time.Duration {
	return e.difficulty.Interval(e.level)
}

// Width returns the playfield column count.
func (e *Engine) Width() int {
	return e.field.Width()
}

// Height returns the playfield row count.
func (e *Engine) Height() int {
	return e.field.Height()
}
