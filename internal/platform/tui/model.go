package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/controller"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Options configures a game session.
type Options struct {
	Notifier      controller.Notifier // Optional gameplay event sink
	Logger        *log.Logger         // Defaults to a discarding logger
	ScreenshotDir string              // Defaults to ~/.blockfall/screenshots
}

// Model is the Bubble Tea model for one game session. It feeds key presses
// and timer ticks to the controller; the controller drives the engine and
// tells the view what to show.
type Model struct {
	game     registry.Game
	ctrl     *controller.Controller
	timer    *dropTimer
	softDrop *softDropWatch
	view     *screenView
	screen   *core.Screen
	keys     GameKeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	shotDir  string
	status   string
	quitting bool
}

// NewModel creates a model for the given game. The game waits on the start
// screen until the player confirms.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	timer := &dropTimer{}
	view := newScreenView(game.Title(), game.State())

	ctrlOpts := []controller.Option{controller.WithLogger(logger)}
	if opts.Notifier != nil {
		ctrlOpts = append(ctrlOpts, controller.WithNotifier(opts.Notifier))
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		ctrl:     controller.New(game, view, timer, ctrlOpts...),
		timer:    timer,
		softDrop: &softDropWatch{},
		view:     view,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:     DefaultGameKeyMap(),
		help:     h,
		logger:   logger,
		config:   cfg,
		shotDir:  opts.ScreenshotDir,
	}
}

// Init implements tea.Model. The drop timer starts on the first confirm.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case DropTickMsg:
		if m.timer.accept(msg) {
			m.ctrl.Tick()
		}
		return m, m.timer.take()

	case softDropReleaseMsg:
		if m.softDrop.release(msg) {
			m.ctrl.Handle(core.ActionSoftDropRelease)
		}
		return m, m.timer.take()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.status = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	if m.ctrl.Handle(action) {
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{m.timer.take()}
	if action == core.ActionSoftDrop {
		cmds = append(cmds, m.softDrop.press())
	}
	return m, tea.Batch(cmds...)
}

// handleResize processes window resize events. The game keeps running; the
// layout is recentered on the next frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.view.draw(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".blockfall", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.view.draw(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer += "  " + statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Mode returns the controller mode.
func (m Model) Mode() controller.Mode {
	return m.ctrl.Mode()
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
