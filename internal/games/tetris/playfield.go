package tetris

import "strings"

// Playfield is the fixed-size grid of locked cells.
// Dimensions are set at creation and never change.
type Playfield struct {
	width  int
	height int
	cells  [][]int
}

// NewPlayfield creates an empty width×height playfield.
func NewPlayfield(width, height int) *Playfield {
	p := &Playfield{
		width:  width,
		height: height,
		cells:  make([][]int, height),
	}
	for y := range p.cells {
		p.cells[y] = make([]int, width)
	}
	return p
}

// Width returns the column count.
func (p *Playfield) Width() int {
	return p.width
}

// Height returns the row count.
func (p *Playfield) Height() int {
	return p.height
}

// InBounds reports whether (x, y) is a playfield cell.
func (p *Playfield) InBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// At returns the value at (x, y). ok is false outside the playfield.
func (p *Playfield) At(x, y int) (value int, ok bool) {
	if !p.InBounds(x, y) {
		return 0, false
	}
	return p.cells[y][x], true
}

// Blocked reports whether a piece cell may not occupy (x, y): either the
// position is outside the field or the cell is already filled.
func (p *Playfield) Blocked(x, y int) bool {
	v, ok := p.At(x, y)
	return !ok || v != 0
}

// Set writes a value at (x, y). Out-of-bounds writes are ignored.
func (p *Playfield) Set(x, y, value int) {
	if !p.InBounds(x, y) {
		return
	}
	p.cells[y][x] = value
}

// Clear empties every cell.
func (p *Playfield) Clear() {
	for y := range p.cells {
		clear(p.cells[y])
	}
}

// ClearFullRows removes every full row, pulls the rows above down and
// leaves empty rows at the top. Returns the number of rows removed.
func (p *Playfield) ClearFullRows() int {
	cleared := 0
	for y := p.height - 1; y >= 0; {
		if !p.rowFull(y) {
			y--
			continue
		}
		cleared++
		for pull := y; pull > 0; pull-- {
			copy(p.cells[pull], p.cells[pull-1])
		}
		clear(p.cells[0])
		// Re-check the same y: a new row was pulled into it
	}
	return cleared
}

func (p *Playfield) rowFull(y int) bool {
	for _, v := range p.cells[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Rows returns a deep copy of the grid.
func (p *Playfield) Rows() [][]int {
	rows := make([][]int, p.height)
	for y, row := range p.cells {
		rows[y] = append([]int(nil), row...)
	}
	return rows
}

// String renders the grid with '.' for empty cells and the piece letter
// for filled ones.
func (p *Playfield) String() string {
	var b strings.Builder
	for y, row := range p.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, v := range row {
			if v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteString(PieceType(v).String())
			}
		}
	}
	return b.String()
}
