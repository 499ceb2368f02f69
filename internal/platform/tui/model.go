package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ie-die/internal/assets"
	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/control"
	"github.com/vovakirdan/ie-die/internal/core"
	"github.com/vovakirdan/ie-die/internal/sim"
	"github.com/vovakirdan/ie-die/internal/storage"
	"github.com/vovakirdan/ie-die/internal/view"
)

// ModelOptions configures a game model.
type ModelOptions struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables persistence
	Sheet   *assets.Sheet  // nil leaves every shape invisible
	Logger  *log.Logger
	Remote  bool          // Session is served over SSH
	Start   *config.Level // Skip the menu and start at this level
}

// Model is the Bubble Tea model running IE, Die!.
// Everything it points to is only touched from Update, so a value
// receiver is enough.
type Model struct {
	cfg        config.GameConfig
	runtime    core.RuntimeConfig
	screen     *core.Screen
	surface    *Surface
	dispatcher *Dispatcher
	coord      *view.Coordinator
	ctrl       *control.Controller
	tracker    *sessionTracker
	keys       *KeyMapper
	store      *storage.Store
	logger     *log.Logger
	scoreboard *ScoreboardModel // Non-nil while the high score table is shown
	ticking    bool             // A TickMsg is in flight
	quitting   bool
	err        error
}

// NewModel creates the model and draws the menu, or starts a session
// right away when opts.Start is set.
func NewModel(opts ModelOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	screen := core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	surface := NewSurface(screen, opts.Game.Canvas.Width, opts.Game.Canvas.Height)
	dispatcher := NewDispatcher(opts.Sheet)
	tracker := &sessionTracker{store: opts.Store, logger: opts.Logger, remote: opts.Remote}

	coordOpts := []view.Option{
		view.WithLogger(opts.Logger),
		view.WithGameOverDelay(opts.Game.Timing.GameOverDelay()),
	}
	var simOpts []sim.Option
	if opts.Runtime.Seed != 0 {
		coordOpts = append(coordOpts, view.WithSeed(opts.Runtime.Seed))
		simOpts = append(simOpts, sim.WithSeed(opts.Runtime.Seed))
	}
	coord := view.NewCoordinator(surface, dispatcher, dispatcher, coordOpts...)

	build := control.ProfileFactory(opts.Game, simOpts...)
	factory := func(level config.Level) *sim.Simulation {
		tracker.begin(level)
		return build(level)
	}
	ctrl := control.New(coord, factory,
		control.WithLogger(opts.Logger),
		control.OnGameOver(func(_ config.Level, scores int) {
			tracker.finish(scores, storage.EndGameOver)
		}),
	)

	m := Model{
		cfg:        opts.Game,
		runtime:    opts.Runtime,
		screen:     screen,
		surface:    surface,
		dispatcher: dispatcher,
		coord:      coord,
		ctrl:       ctrl,
		tracker:    tracker,
		keys:       NewKeyMapper(),
		store:      opts.Store,
		logger:     opts.Logger,
	}

	coord.Redraw()
	if opts.Start != nil {
		ctrl.Start(*opts.Start)
		m.ticking = true
	}
	return m
}

// Init starts the tick loop if a session is already running and flushes
// any queued asset loads.
func (m Model) Init() tea.Cmd {
	var tick tea.Cmd
	if m.ticking {
		tick = tickCmd(m.cfg.Timing.Tick())
	}
	return tea.Batch(tick, m.dispatcher.Flush())
}

// Update handles messages and updates the model state. A panic raised by
// an event listener ends the program with an error instead of crashing
// the terminal.
func (m Model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("recovered panic in update loop", "panic", r)
			m.err = fmt.Errorf("tui: update loop panic: %v", r)
			m.quitting = true
			next, cmd = m, tea.Quit
		}
	}()

	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case callbackMsg:
		msg.fn()
		return m, m.dispatcher.Flush()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.handleScoreboardKey(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quit()
		return m, tea.Quit
	}

	switch action {
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionScoreboard:
		if _, playing := m.ctrl.Active(); !playing {
			sb := NewScoreboardModel(m.store, m.screen.Width(), m.screen.Height())
			m.scoreboard = &sb
		}
		return m, nil
	}

	if level, ok := LevelFor(action); ok {
		m.ctrl.Start(level)
	}
	return m.afterInput()
}

func (m Model) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.step(msg)
	switch {
	case sb.IsQuitting():
		m.quit()
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		m.coord.Redraw()
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleMouse maps pointer events onto the controller.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, nil
	}

	ev := m.keys.MapMouse(msg)
	x, y := m.surface.ToCanvas(ev.X, ev.Y)

	switch ev.Action {
	case core.PointerPress, core.PointerDrag:
		m.ctrl.Press(x, y)
	case core.PointerRelease:
		m.ctrl.Click(x, y)
	}

	return m.afterInput()
}

// afterInput starts the tick loop for a freshly started session and
// flushes work queued by the input.
func (m Model) afterInput() (tea.Model, tea.Cmd) {
	var tick tea.Cmd
	if _, playing := m.ctrl.Active(); playing && !m.ticking {
		m.ticking = true
		tick = tickCmd(m.cfg.Timing.Tick())
	}
	return m, tea.Batch(tick, m.dispatcher.Flush())
}

// handleResize rescales the canvas onto the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.coord.Redraw()

	if m.scoreboard != nil {
		sb, cmd := m.scoreboard.step(msg)
		m.scoreboard = &sb
		return m, cmd
	}
	return m, nil
}

// handleTick advances the simulation. The loop stops when the session ends
// and restarts with the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tracker.tick()
	if !m.ctrl.Tick() {
		m.ticking = false
		return m, m.dispatcher.Flush()
	}
	return m, tea.Batch(tickCmd(m.cfg.Timing.Tick()), m.dispatcher.Flush())
}

// quit records an unfinished session before the program exits.
func (m *Model) quit() {
	m.quitting = true
	if active, ok := m.ctrl.Active(); ok {
		m.logger.Info("quit during session", "level", active.Level, "scores", active.Sim.Scores())
		m.tracker.finish(active.Sim.Scores(), storage.EndQuit)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".iedie", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("iedie_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return RenderScreen(m.screen)
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given options.
func Run(opts ModelOptions) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
