package core

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for piece generation (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// PieceState is a copy of the active piece: its anchor and shape matrix.
type PieceState struct {
	X, Y  int     // Top-left anchor of the shape in playfield coordinates
	Shape [][]int // Square matrix; 0 = empty, otherwise the piece value
}

// Cells calls fn for every filled cell of the piece in playfield coordinates.
func (p PieceState) Cells(fn func(x, y, value int)) {
	for dy, row := range p.Shape {
		for dx, v := range row {
			if v != 0 {
				fn(p.X+dx, p.Y+dy, v)
			}
		}
	}
}

// GameState is a read-only snapshot of the engine.
// Everything in it is a copy; mutating it never affects the engine.
type GameState struct {
	Playfield [][]int    // Rows of locked cells; 0 = empty
	Piece     PieceState // Currently falling piece
	Next      PieceState // Preview of the queued piece, anchored at (0, 0)
	GhostY    int        // Row the active piece would land on
	Score     int
	Lines     int
	Level     int
	GameOver  bool
}

// Width returns the playfield column count.
func (s GameState) Width() int {
	if len(s.Playfield) == 0 {
		return 0
	}
	return len(s.Playfield[0])
}

// Height returns the playfield row count.
func (s GameState) Height() int {
	return len(s.Playfield)
}

// DropResult reports what a single gravity step did.
type DropResult struct {
	Moved    bool // Piece moved down one row
	Locked   bool // Piece was locked into the playfield
	Cleared  int  // Lines cleared by the lock
	LevelUp  bool // Level increased as a result of the clear
	GameOver bool // Spawned piece collided immediately
}
