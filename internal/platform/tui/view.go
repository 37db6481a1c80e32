package tui

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

// screenKind is the screen the controller last asked for.
type screenKind int

const (
	screenStart screenKind = iota
	screenPause
	screenMain
	screenEnd
)

const (
	cellW  = 2  // Terminal columns per playfield cell
	panelW = 14 // Side panel width
)

// screenView implements controller.View. Render calls only record what to
// show; draw paints it when Bubble Tea asks for a frame.
type screenView struct {
	title string
	kind  screenKind
	state core.GameState
}

func newScreenView(title string, initial core.GameState) *screenView {
	return &screenView{title: title, kind: screenStart, state: initial}
}

func (v *screenView) RenderStartScreen() {
	v.kind = screenStart
}

func (v *screenView) RenderPauseScreen() {
	v.kind = screenPause
}

func (v *screenView) RenderMainScreen(state core.GameState) {
	v.kind = screenMain
	v.state = state
}

func (v *screenView) RenderEndScreen(state core.GameState) {
	v.kind = screenEnd
	v.state = state
}

// layout returns the board rectangle, border included, centered on s.
func (v *screenView) layout(s *core.Screen) core.Rect {
	boardW := v.state.Width()*cellW + 2
	boardH := v.state.Height() + 2
	area := s.Bounds().Centered(boardW+1+panelW, boardH)
	return core.NewRect(core.Clamp(area.X, 0, s.Width()), core.Clamp(area.Y, 0, s.Height()), boardW, boardH)
}

// draw paints the current screen.
func (v *screenView) draw(s *core.Screen) {
	s.Clear()
	board := v.layout(s)

	switch v.kind {
	case screenStart:
		v.drawBoard(s, board, false)
		v.drawPanel(s, board, false)
		drawOverlay(s, board, core.ColorCyan,
			"BLOCKFALL",
			v.title,
			"",
			"ENTER to start",
		)

	case screenPause:
		// The field is hidden while paused
		v.drawBoard(s, board, false)
		v.drawPanel(s, board, true)
		drawOverlay(s, board, core.ColorYellow,
			"PAUSED",
			"",
			"ENTER to resume",
		)

	case screenMain:
		v.drawBoard(s, board, true)
		v.drawPanel(s, board, true)

	case screenEnd:
		v.drawBoard(s, board, true)
		v.drawPanel(s, board, true)
		drawOverlay(s, board, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score %d", v.state.Score),
			"",
			"ENTER to play again",
		)
	}
}

// drawBoard draws the frame and, when contents is set, the locked cells,
// the ghost and the active piece.
func (v *screenView) drawBoard(s *core.Screen, board core.Rect, contents bool) {
	s.DrawBox(board, core.ColorGray)

	for y := range v.state.Height() {
		for x := range v.state.Width() {
			sx, sy := cellPos(board, x, y)
			s.SetCell(sx, sy, ' ', core.ColorDefault)
			s.SetCell(sx+1, sy, '·', core.ColorGray)
		}
	}
	if !contents {
		return
	}

	for y, row := range v.state.Playfield {
		for x, val := range row {
			if val != 0 {
				v.drawBlock(s, board, x, y, '█', tetris.ColorOf(val))
			}
		}
	}

	ghost := v.state.Piece
	ghost.Y = v.state.GhostY
	if ghost.Y != v.state.Piece.Y {
		ghost.Cells(func(x, y, _ int) {
			v.drawBlock(s, board, x, y, '░', core.ColorGray)
		})
	}

	v.state.Piece.Cells(func(x, y, val int) {
		v.drawBlock(s, board, x, y, '█', tetris.ColorOf(val))
	})
}

// drawPanel draws the next piece preview and the counters to the right of
// the board.
func (v *screenView) drawPanel(s *core.Screen, board core.Rect, stats bool) {
	px := board.Right() + 1
	py := board.Y

	preview := core.NewRect(px, py, panelW, 6)
	s.DrawBox(preview, core.ColorGray)
	s.DrawTextColored(px+2, py, " NEXT ", core.ColorWhite)

	if !stats {
		return
	}

	next := v.state.Next
	size := len(next.Shape)
	offX := px + (panelW-size*cellW)/2
	offY := py + 1 + (4-size)/2
	next.Cells(func(x, y, val int) {
		c := tetris.ColorOf(val)
		s.SetCell(offX+x*cellW, offY+y, '█', c)
		s.SetCell(offX+x*cellW+1, offY+y, '█', c)
	})

	rows := []struct {
		label string
		value int
	}{
		{"SCORE", v.state.Score},
		{"LINES", v.state.Lines},
		{"LEVEL", v.state.Level},
	}
	for i, r := range rows {
		y := py + 7 + i*3
		s.DrawTextColored(px+1, y, r.label, core.ColorGray)
		s.DrawTextColored(px+1, y+1, fmt.Sprintf("%d", r.value), core.ColorBrightYellow)
	}
}

func cellPos(board core.Rect, x, y int) (int, int) {
	return board.X + 1 + x*cellW, board.Y + 1 + y
}

// drawBlock fills one playfield cell. Cells outside the field are skipped.
func (v *screenView) drawBlock(s *core.Screen, board core.Rect, x, y int, r rune, c core.Color) {
	if !core.NewRect(0, 0, v.state.Width(), v.state.Height()).Contains(x, y) {
		return
	}
	sx, sy := cellPos(board, x, y)
	s.SetCell(sx, sy, r, c)
	s.SetCell(sx+1, sy, r, c)
}

// drawOverlay draws a framed message box centered on the board.
func drawOverlay(s *core.Screen, board core.Rect, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := board.Centered(w+4, len(lines)+2)

	s.DrawRect(box, ' ')
	s.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		s.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
