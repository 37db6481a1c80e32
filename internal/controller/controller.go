// Package controller drives a game engine from logical input actions and
// drop timer ticks. It owns the play mode state machine and decides which
// screen the view should show after every change.
//
// A Controller is not safe for concurrent use. The platform delivers input
// and ticks from a single event loop.
package controller

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode is the controller's play state.
type Mode int

const (
	ModeNotStarted Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNotStarted:
		return "not-started"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Timer schedules auto-drop ticks. Start replaces any running schedule so
// that a tick from an earlier Start never arrives afterwards. Stop
// guarantees no further ticks until the next Start.
type Timer interface {
	Start(interval time.Duration)
	Stop()
	Running() bool
}

// View presents the game. The controller calls exactly one method after
// every state change.
type View interface {
	RenderStartScreen()
	RenderPauseScreen()
	RenderMainScreen(state core.GameState)
	RenderEndScreen(state core.GameState)
}

// Notifier receives gameplay events. Used for sound effects.
type Notifier interface {
	PieceLocked()
	LinesCleared(n int)
	LevelUp(level int)
	GameOver(score int)
}

// debugStater is implemented by engines that can dump their board for the
// debug log.
type debugStater interface {
	DebugState() string
}

// Controller maps actions and ticks onto engine calls.
type Controller struct {
	game     registry.Game
	view     View
	timer    Timer
	notifier Notifier
	logger   *log.Logger

	mode       Mode
	timerLevel int
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier registers a gameplay event sink.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller in ModeNotStarted and shows the start screen.
func New(game registry.Game, view View, timer Timer, opts ...Option) *Controller {
	c := &Controller{
		game:   game,
		view:   view,
		timer:  timer,
		logger: log.New(io.Discard),
		mode:   ModeNotStarted,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.view.RenderStartScreen()
	return c
}

// Mode returns the current play state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Handle applies one logical action. It returns true when the action asks
// the program to quit.
func (c *Controller) Handle(a core.Action) (quit bool) {
	switch a {
	case core.ActionConfirm:
		c.confirm()

	case core.ActionMoveLeft:
		if c.acceptsMoves() {
			c.game.MovePieceLeft()
			c.render()
		}

	case core.ActionMoveRight:
		if c.acceptsMoves() {
			c.game.MovePieceRight()
			c.render()
		}

	case core.ActionRotateCW:
		if c.acceptsMoves() {
			c.game.RotatePiece()
			c.render()
		}

	case core.ActionSoftDrop:
		if c.acceptsMoves() {
			c.timer.Stop()
			c.afterDrop(c.game.SoftDrop())
		}

	case core.ActionSoftDropRelease:
		if c.mode == ModePlaying && !c.timer.Running() {
			c.startTimer()
		}

	case core.ActionHardDrop:
		if c.acceptsMoves() {
			c.afterDrop(c.game.HardDrop())
		}

	case core.ActionQuit:
		c.timer.Stop()
		c.logger.Debug("quit", "mode", c.mode)
		return true

	case core.ActionNone:
	}

	return false
}

// Tick runs one auto-drop step. Ticks outside ModePlaying are ignored.
func (c *Controller) Tick() {
	if c.mode != ModePlaying {
		return
	}
	c.afterDrop(c.game.Drop())
}

// acceptsMoves reports whether piece input is allowed. Input also reaches a
// paused game; the piece moves but the pause screen stays up.
func (c *Controller) acceptsMoves() bool {
	return c.mode == ModePlaying || c.mode == ModePaused
}

func (c *Controller) confirm() {
	switch c.mode {
	case ModeNotStarted, ModePaused:
		c.play()
	case ModePlaying:
		c.pause()
	case ModeGameOver:
		c.reset()
	}
}

func (c *Controller) play() {
	c.logger.Debug("play", "from", c.mode, "game", c.game.ID())
	c.mode = ModePlaying
	c.startTimer()
	c.render()
}

func (c *Controller) pause() {
	c.logger.Debug("pause")
	c.mode = ModePaused
	c.timer.Stop()
	c.render()
}

func (c *Controller) reset() {
	c.logger.Info("new game", "game", c.game.ID())
	c.game.Reset()
	c.play()
}

func (c *Controller) startTimer() {
	c.timerLevel = c.game.State().Level
	c.timer.Start(c.game.DropInterval())
}

// afterDrop reacts to a gravity step: events, game over and a faster timer
// on level up.
func (c *Controller) afterDrop(res core.DropResult) {
	if res.Locked {
		c.notify(func(n Notifier) { n.PieceLocked() })
	}
	if res.Cleared > 0 {
		c.notify(func(n Notifier) { n.LinesCleared(res.Cleared) })
	}

	state := c.game.State()
	if res.LevelUp {
		c.logger.Info("level up", "level", state.Level, "lines", state.Lines)
		c.notify(func(n Notifier) { n.LevelUp(state.Level) })
	}

	if res.GameOver || state.GameOver {
		c.endGame(state)
		return
	}

	if c.timer.Running() && state.Level != c.timerLevel {
		c.startTimer()
	}
	c.render()
}

func (c *Controller) endGame(state core.GameState) {
	if c.mode != ModeGameOver {
		c.mode = ModeGameOver
		c.timer.Stop()
		c.logger.Info("game over", "score", state.Score, "lines", state.Lines, "level", state.Level)
		if d, ok := c.game.(debugStater); ok {
			c.logger.Debug("final board", "state", d.DebugState())
		}
		c.notify(func(n Notifier) { n.GameOver(state.Score) })
	}
	c.view.RenderEndScreen(state)
}

// render shows the screen matching the engine state and mode.
func (c *Controller) render() {
	state := c.game.State()
	if state.GameOver {
		c.endGame(state)
		return
	}

	switch c.mode {
	case ModeNotStarted:
		c.view.RenderStartScreen()
	case ModePaused:
		c.view.RenderPauseScreen()
	case ModePlaying:
		c.view.RenderMainScreen(state)
	case ModeGameOver:
		c.view.RenderEndScreen(state)
	}
}

func (c *Controller) notify(fn func(Notifier)) {
	if c.notifier != nil {
		fn(c.notifier)
	}
}
