package tetris

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
)

var tRows = [][]int{
	{0, 1, 0},
	{1, 1, 1},
	{0, 0, 0},
}

func newTestEngine(t *testing.T, movement string) *Engine {
	t.Helper()
	cfg := config.DefaultBlockfallConfig()
	cfg.Rules.Movement = movement
	require.NoError(t, cfg.Validate())
	return New(cfg, 42)
}

// place replaces the active piece.
func place(e *Engine, x, y int, rows [][]int) {
	e.piece = activePiece{x: x, y: y, kind: PieceT, shape: NewShape(rows)}
}

// referenceCollision is the collision rule written out independently.
func referenceCollision(field [][]int, px, py int, shape Shape) bool {
	for y := range shape {
		for x := range shape[y] {
			if shape[y][x] == 0 {
				continue
			}
			fy, fx := py+y, px+x
			if fy < 0 || fy >= len(field) || fx < 0 || fx >= len(field[fy]) {
				return true
			}
			if field[fy][fx] != 0 {
				return true
			}
		}
	}
	return false
}

func TestHasCollisionTShapeScenario(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)

	place(e, 0, 0, tRows)
	assert.False(t, e.HasCollision(), "T at (0,0) on an empty field")

	// Column -1 holds the T's left arm
	place(e, -1, 0, tRows)
	assert.True(t, e.HasCollision(), "T at x=-1 pokes out of the left edge")

	// Rightmost legal column for a 3-wide shape is width-3
	place(e, 7, 0, tRows)
	assert.False(t, e.HasCollision())
	place(e, 8, 0, tRows)
	assert.True(t, e.HasCollision())
}

func TestHasCollisionIgnoresEmptyShapeCells(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)

	// Bottom shape row is empty and hangs below the field
	place(e, 0, 18, tRows)
	assert.False(t, e.HasCollision())

	// Top corners of the T are empty; a locked cell under one is fine
	e.field.Set(0, 18, int(PieceZ))
	assert.False(t, e.HasCollision())

	// Under a filled cell it collides
	e.field.Set(1, 18, int(PieceZ))
	assert.True(t, e.HasCollision())
}

func TestHasCollisionMatchesReference(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		e.field.Clear()
		for range rng.Intn(60) {
			e.field.Set(rng.Intn(10), rng.Intn(20), 1+rng.Intn(7))
		}

		shape := ShapeOf(randomPiece(rng))
		for range rng.Intn(4) {
			shape.RotateCW()
		}
		x := rng.Intn(14) - 3
		y := rng.Intn(24) - 3
		e.piece = activePiece{x: x, y: y, shape: shape}

		want := referenceCollision(e.field.Rows(), x, y, shape)
		require.Equal(t, want, e.HasCollision(), "iteration %d: piece at (%d,%d)\n%s", i, x, y, e.field)
	}
}

func TestLockPieceScenario(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	before := e.field.Rows()

	place(e, 3, 18, tRows)
	e.LockPiece()

	after := e.field.Rows()
	assert.Equal(t, []int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0}, after[18])
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 0, 0, 0, 0}, after[19])
	for y := 0; y < 18; y++ {
		assert.Equal(t, before[y], after[y], "row %d should be unchanged", y)
	}
}

func TestLockPieceSpawnOrientationRows(t *testing.T) {
	// Same T with the flat side down: row 18 cols 3-5, row 19 col 4
	e := newTestEngine(t, config.MovementStrict)
	place(e, 3, 18, [][]int{
		{1, 1, 1},
		{0, 1, 0},
		{0, 0, 0},
	})
	e.LockPiece()

	rows := e.field.Rows()
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 0, 0, 0, 0}, rows[18])
	assert.Equal(t, []int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0}, rows[19])
}

func TestLockPieceReproducesShape(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)

	for p := PieceI; p <= PieceL; p++ {
		e.field.Clear()
		shape := ShapeOf(p)
		e.piece = activePiece{x: 2, y: 5, kind: p, shape: shape}
		e.LockPiece()

		for y := range shape {
			for x := range shape[y] {
				got, ok := e.field.At(2+x, 5+y)
				require.True(t, ok)
				assert.Equal(t, shape[y][x], got, "piece %s cell (%d,%d)", p, x, y)
			}
		}
	}
}

func TestLockPieceSkipsCellsOutsideField(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, -1, 0, tRows)

	assert.NotPanics(t, e.LockPiece)
	rows := e.field.Rows()
	assert.Equal(t, 1, rows[0][0])
	assert.Equal(t, []int{1, 1, 0}, rows[1][:3])
}

func TestLockPieceOverwritesWithPieceValue(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	e.piece = activePiece{x: 0, y: 0, kind: PieceO, shape: ShapeOf(PieceO)}
	e.LockPiece()

	v, _ := e.field.At(1, 1)
	assert.Equal(t, int(PieceO), v)
}

func TestResetClearsEverything(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	for range 30 {
		e.HardDrop()
	}
	e.score = 1234
	e.lines = 17
	e.level = 3

	e.Reset()

	st := e.State()
	for y, row := range st.Playfield {
		for x, v := range row {
			assert.Zero(t, v, "cell (%d,%d) not empty after reset", x, y)
		}
	}
	assert.Zero(t, st.Score)
	assert.Zero(t, st.Lines)
	assert.Zero(t, st.Level)
	assert.False(t, st.GameOver)
	assert.False(t, e.HasCollision())
	assert.Equal(t, 0, st.Piece.Y)
}

func TestStrictMovesStopAtWalls(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 0, 0, tRows)

	assert.False(t, e.MovePieceLeft())
	assert.Equal(t, 0, e.piece.x)

	for e.MovePieceRight() {
	}
	assert.Equal(t, 7, e.piece.x)
	assert.False(t, e.HasCollision())

	for e.MovePieceDown() {
	}
	assert.Equal(t, 18, e.piece.y)
	assert.False(t, e.HasCollision())
}

func TestStrictMoveBlockedByLockedCells(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 3, 0, tRows)
	e.field.Set(2, 1, int(PieceI))

	assert.False(t, e.MovePieceLeft())
	assert.True(t, e.MovePieceRight())
}

func TestPermissiveMovesCheckCurrentPosition(t *testing.T) {
	e := newTestEngine(t, config.MovementPermissive)
	place(e, 0, 0, tRows)

	// Legal now, so the move is applied even though it leaves the field
	assert.True(t, e.MovePieceLeft())
	assert.Equal(t, -1, e.piece.x)
	assert.True(t, e.HasCollision())

	// Already out of bounds: every move is refused
	assert.False(t, e.MovePieceLeft())
	assert.False(t, e.MovePieceRight())
	assert.False(t, e.MovePieceDown())
	assert.Equal(t, -1, e.piece.x)
}

func TestPermissiveMoveDownIntoLockedCells(t *testing.T) {
	e := newTestEngine(t, config.MovementPermissive)
	place(e, 3, 0, tRows)
	e.field.Set(4, 2, int(PieceS))

	assert.True(t, e.MovePieceDown())
	assert.True(t, e.HasCollision())
	assert.False(t, e.MovePieceDown())
}

func TestRotatePiece(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 3, 5, tRows)

	assert.True(t, e.RotatePiece())
	assert.Equal(t, Shape{{0, 1, 0}, {0, 1, 1}, {0, 1, 0}}, e.piece.shape)
}

func TestRotatePieceRevertsOnCollision(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 0, 0, tRows)
	// The rotated T needs (1,2); block it
	e.field.Set(1, 2, int(PieceJ))

	assert.False(t, e.RotatePiece())
	assert.Equal(t, NewShape(tRows), e.piece.shape)
	assert.False(t, e.HasCollision())
}

func TestRotatePieceAgainstWallHasNoKick(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	// Vertical I in the last column; rotating to horizontal leaves the field
	shape := ShapeOf(PieceI)
	shape.RotateCW()
	e.piece = activePiece{x: 7, y: 0, kind: PieceI, shape: shape}
	require.False(t, e.HasCollision())

	before := e.piece.shape.Clone()
	assert.False(t, e.RotatePiece())
	assert.Equal(t, before, e.piece.shape)
	assert.Equal(t, 7, e.piece.x)
}

func TestDropMovesThenLocks(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 3, 17, tRows)

	res := e.Drop()
	assert.True(t, res.Moved)
	assert.False(t, res.Locked)
	assert.Equal(t, 18, e.piece.y)

	res = e.Drop()
	assert.False(t, res.Moved)
	assert.True(t, res.Locked)
	assert.Zero(t, res.Cleared)
	assert.False(t, res.GameOver)

	v, _ := e.field.At(4, 19)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, e.piece.y, "next piece spawns at the top")
}

func TestDropClearsAndScoresLine(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	for x := 4; x < 10; x++ {
		e.field.Set(x, 19, int(PieceZ))
	}
	e.piece = activePiece{x: 0, y: 18, kind: PieceI, shape: ShapeOf(PieceI)}

	res := e.Drop()
	require.True(t, res.Locked)
	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, 40, e.score)
	assert.Equal(t, 1, e.lines)

	for x := 0; x < 10; x++ {
		v, _ := e.field.At(x, 19)
		assert.Zero(t, v, "row 19 should be empty after the clear")
	}
}

func TestLevelUpAfterTenLines(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	e.lines = 9
	for x := 4; x < 10; x++ {
		e.field.Set(x, 19, int(PieceZ))
	}
	e.piece = activePiece{x: 0, y: 18, kind: PieceI, shape: ShapeOf(PieceI)}

	res := e.Drop()
	assert.True(t, res.LevelUp)
	assert.Equal(t, 1, e.level)
	assert.Equal(t, 900*time.Millisecond, e.DropInterval())

	// Next clear is scored at level 1
	for x := 4; x < 10; x++ {
		e.field.Set(x, 19, int(PieceZ))
	}
	e.piece = activePiece{x: 0, y: 18, kind: PieceI, shape: ShapeOf(PieceI)}
	e.Drop()
	assert.Equal(t, 40+40*2, e.score)
}

func TestSoftDropScoresOnlyWhenMoving(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 3, 17, tRows)

	e.SoftDrop()
	assert.Equal(t, 1, e.score)

	res := e.SoftDrop()
	assert.True(t, res.Locked)
	assert.Equal(t, 1, e.score)
}

func TestHardDrop(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 3, 0, tRows)

	res := e.HardDrop()
	assert.True(t, res.Moved)
	assert.True(t, res.Locked)
	assert.Equal(t, 18*2, e.score)

	rows := e.field.Rows()
	assert.Equal(t, []int{0, 0, 0, 0, 1, 0, 0, 0, 0, 0}, rows[18])
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 0, 0, 0, 0}, rows[19])
}

func TestGameOverWhenSpawnCollides(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	for y := 0; y < 4; y++ {
		for x := 0; x < 9; x++ {
			e.field.Set(x, y, int(PieceO))
		}
	}

	res := e.HardDrop()
	assert.True(t, res.GameOver)
	assert.True(t, e.State().GameOver)

	assert.False(t, e.MovePieceLeft())
	assert.False(t, e.RotatePiece())
	assert.Equal(t, true, e.Drop().GameOver)

	e.Reset()
	assert.False(t, e.State().GameOver)
}

func TestClearLinesMultipleRows(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	for x := 0; x < 10; x++ {
		e.field.Set(x, 19, int(PieceI))
		e.field.Set(x, 17, int(PieceI))
	}
	e.field.Set(2, 18, int(PieceT))
	e.field.Set(5, 16, int(PieceL))

	assert.Equal(t, 2, e.ClearLines())

	rows := e.field.Rows()
	assert.Equal(t, int(PieceT), rows[19][2])
	assert.Equal(t, int(PieceL), rows[18][5])
	for y := 0; y < 18; y++ {
		for x := 0; x < 10; x++ {
			assert.Zero(t, rows[y][x])
		}
	}
}

func TestGhostY(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	place(e, 3, 0, tRows)
	assert.Equal(t, 18, e.GhostY())

	e.field.Set(4, 10, int(PieceO))
	assert.Equal(t, 8, e.GhostY())
}

func TestStateIsACopy(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	st := e.State()
	corner := e.piece.shape[0][0]

	st.Playfield[19][0] = 7
	st.Piece.Shape[0][0] = corner + 1
	st.Piece.X = 99

	v, _ := e.field.At(0, 19)
	assert.Zero(t, v)
	assert.NotEqual(t, 99, e.piece.x)
	assert.Equal(t, corner, e.piece.shape[0][0])
}

func TestStateContents(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	st := e.State()

	assert.Equal(t, 10, st.Width())
	assert.Equal(t, 20, st.Height())
	assert.NotEmpty(t, st.Next.Shape)
	assert.Equal(t, e.GhostY(), st.GhostY)
}

func TestSpawnIsCentered(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)
	for range 20 {
		e.Reset()
		size := e.piece.shape.Size()
		assert.Equal(t, (10-size)/2, e.piece.x)
		assert.Equal(t, 0, e.piece.y)
	}
}

func TestExplicitSpawnColumnFitsEveryPiece(t *testing.T) {
	for _, spawnX := range []int{0, 6, 7, 9} {
		cfg := config.DefaultBlockfallConfig()
		cfg.Playfield.SpawnX = spawnX

		for seed := int64(1); seed <= 20; seed++ {
			e := New(cfg, seed)
			size := e.piece.shape.Size()

			assert.False(t, e.gameOver, "spawn_x %d seed %d", spawnX, seed)
			assert.GreaterOrEqual(t, e.piece.x, 0)
			assert.LessOrEqual(t, e.piece.x+size, 10, "spawn_x %d seed %d", spawnX, seed)
		}
	}
}

func TestPiecesFitMaxPieceSize(t *testing.T) {
	for p := PieceI; p <= PieceL; p++ {
		assert.LessOrEqual(t, ShapeOf(p).Size(), config.MaxPieceSize, p.String())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultBlockfallConfig()
	e1 := New(cfg, 12345)
	e2 := New(cfg, 12345)

	for i := 0; i < 200; i++ {
		switch i % 4 {
		case 0:
			e1.MovePieceLeft()
			e2.MovePieceLeft()
		case 1:
			e1.RotatePiece()
			e2.RotatePiece()
		default:
			e1.Drop()
			e2.Drop()
		}
	}

	assert.Equal(t, e1.State(), e2.State())
	assert.Equal(t, e1.DebugState(), e2.DebugState())
}

func TestDropIntervalFollowsLevel(t *testing.T) {
	e := newTestEngine(t, config.MovementStrict)

	tests := []struct {
		level    int
		expected time.Duration
	}{
		{0, 1000 * time.Millisecond},
		{3, 700 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{15, 100 * time.Millisecond},
	}
	for _, tc := range tests {
		e.level = tc.level
		assert.Equal(t, tc.expected, e.DropInterval(), "level %d", tc.level)
	}
}
