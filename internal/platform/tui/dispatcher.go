package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ie-die/internal/assets"
	"github.com/vovakirdan/ie-die/internal/view"
)

// callbackMsg carries deferred work back onto the update loop.
type callbackMsg struct {
	fn func()
}

// Dispatcher queues asset loads and delayed callbacks as Bubble Tea
// commands. The work they produce always runs inside Update, so the
// coordinator never sees a callback from another goroutine.
type Dispatcher struct {
	sheet   *assets.Sheet
	pending []tea.Cmd
}

var (
	_ view.AssetLoader = (*Dispatcher)(nil)
	_ view.Scheduler   = (*Dispatcher)(nil)
)

var errNoSheet = errors.New("tui: sprite sheet unavailable")

// NewDispatcher creates a dispatcher loading sprites from sheet.
// A nil sheet makes every load fail.
func NewDispatcher(sheet *assets.Sheet) *Dispatcher {
	return &Dispatcher{sheet: sheet}
}

// Load decodes a sprite in a command and delivers it as a message.
func (d *Dispatcher) Load(v assets.Variant, done func(assets.Sprite, error)) {
	sheet := d.sheet
	d.pending = append(d.pending, func() tea.Msg {
		if sheet == nil {
			return callbackMsg{fn: func() { done(assets.Sprite{}, errNoSheet) }}
		}
		sp, err := sheet.Sprite(v)
		return callbackMsg{fn: func() { done(sp, err) }}
	})
}

// After runs fn on the update loop once delay has passed.
func (d *Dispatcher) After(delay time.Duration, fn func()) {
	d.pending = append(d.pending, tea.Tick(delay, func(time.Time) tea.Msg {
		return callbackMsg{fn: fn}
	}))
}

// Flush returns the queued work as one command, or nil if nothing is queued.
func (d *Dispatcher) Flush() tea.Cmd {
	if len(d.pending) == 0 {
		return nil
	}
	cmds := d.pending
	d.pending = nil
	return tea.Batch(cmds...)
}

// Pending reports how many commands are queued.
func (d *Dispatcher) Pending() int {
	return len(d.pending)
}
