// Package tui provides the Bubble Tea integration for blockfall.
// It maps keys to controller actions, runs the drop timer on tea.Tick and
// draws controller render requests into a screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// softDropReleaseDelay is how long after the last soft drop key event the
// key counts as released. Terminals only report presses, and a held key
// repeats well within this window.
const softDropReleaseDelay = 300 * time.Millisecond

// DropTickMsg is an auto-drop tick from a dropTimer.
type DropTickMsg struct {
	gen uint64
}

// softDropReleaseMsg fires when the soft drop key has gone quiet.
type softDropReleaseMsg struct {
	gen uint64
}

// dropTimer implements controller.Timer on top of tea.Tick.
//
// Bubble Tea commands cannot be cancelled, so every Start and Stop bumps a
// generation and ticks from an older generation are dropped on arrival.
// Commands are queued and collected by the model after each update.
type dropTimer struct {
	gen      uint64
	interval time.Duration
	running  bool
	pending  tea.Cmd
}

// Start schedules ticks every interval, replacing any earlier schedule.
func (t *dropTimer) Start(interval time.Duration) {
	t.gen++
	t.interval = interval
	t.running = true
	t.pending = t.schedule()
}

// Stop cancels the schedule.
func (t *dropTimer) Stop() {
	t.gen++
	t.running = false
	t.pending = nil
}

// Running reports whether ticks are scheduled.
func (t *dropTimer) Running() bool {
	return t.running
}

// Interval returns the interval of the current schedule.
func (t *dropTimer) Interval() time.Duration {
	return t.interval
}

// accept reports whether msg belongs to the live schedule. An accepted tick
// queues the next one.
func (t *dropTimer) accept(msg DropTickMsg) bool {
	if !t.running || msg.gen != t.gen {
		return false
	}
	t.pending = t.schedule()
	return true
}

// take returns and clears the queued command.
func (t *dropTimer) take() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

func (t *dropTimer) schedule() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return DropTickMsg{gen: gen}
	})
}

// softDropWatch turns repeated soft drop key presses into a single release
// event once the presses stop.
type softDropWatch struct {
	gen    uint64
	active bool
}

// press records a key press and returns the command that fires the release.
func (w *softDropWatch) press() tea.Cmd {
	w.gen++
	w.active = true
	gen := w.gen
	return tea.Tick(softDropReleaseDelay, func(time.Time) tea.Msg {
		return softDropReleaseMsg{gen: gen}
	})
}

// release reports whether msg is the release for the latest press.
func (w *softDropWatch) release(msg softDropReleaseMsg) bool {
	if !w.active || msg.gen != w.gen {
		return false
	}
	w.active = false
	return true
}
