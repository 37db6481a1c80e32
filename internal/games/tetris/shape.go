package tetris

// Shape is a square matrix of cells describing a piece in one orientation.
// A zero cell is empty; any other value is filled and identifies the piece.
type Shape [][]int

// NewShape copies rows into a new Shape. Rows must form a square matrix.
func NewShape(rows [][]int) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			panic("tetris: shape matrix must be square")
		}
		s[y] = append([]int(nil), row...)
	}
	return s
}

// Size returns N for an N×N shape.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y, row := range s {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// RotateCW rotates the matrix 90° clockwise in place.
func (s Shape) RotateCW() {
	s.rotate(true)
}

// RotateCCW rotates the matrix 90° counter-clockwise in place.
func (s Shape) RotateCCW() {
	s.rotate(false)
}

// rotate walks the concentric rings from the outside in. For ring i, each j
// in [i, n-1-i) names four cells that trade places:
//
//	(i, j)  (j, n-1-i)  (n-1-i, n-1-j)  (n-1-j, i)
//
// Clockwise, (i, j) takes the value of (n-1-j, i) and the others follow.
func (s Shape) rotate(clockwise bool) {
	n := len(s)
	last := n - 1

	for i := 0; i < n/2; i++ {
		for j := i; j < last-i; j++ {
			tmp := s[i][j]

			if clockwise {
				s[i][j] = s[last-j][i]
				s[last-j][i] = s[last-i][last-j]
				s[last-i][last-j] = s[j][last-i]
				s[j][last-i] = tmp
			} else {
				s[i][j] = s[j][last-i]
				s[j][last-i] = s[last-i][last-j]
				s[last-i][last-j] = s[last-j][i]
				s[last-j][i] = tmp
			}
		}
	}
}

// Cells calls fn with the local coordinates and value of every filled cell.
func (s Shape) Cells(fn func(x, y, value int)) {
	for y, row := range s {
		for x, v := range row {
			if v != 0 {
				fn(x, y, v)
			}
		}
	}
}
