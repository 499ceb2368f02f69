// Package control turns pointer and keyboard input into session actions:
// starting a game from the menu and destroying shapes during play.
package control

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/events"
	"github.com/vovakirdan/ie-die/internal/sim"
	"github.com/vovakirdan/ie-die/internal/view"
)

// Session is the controller's view of the current game. It is either
// NoSession or *ActiveSession.
type Session interface {
	session()
}

// NoSession means the menu is shown.
type NoSession struct{}

func (NoSession) session() {}

// ActiveSession is a game in progress.
type ActiveSession struct {
	Level config.Level
	Sim   *sim.Simulation
}

func (*ActiveSession) session() {}

// Factory builds a new simulation for a difficulty.
type Factory func(level config.Level) *sim.Simulation

// Presenter is the part of the rendering coordinator the controller needs.
type Presenter interface {
	Bind(s *sim.Simulation)
	ButtonAt(x, y int) (config.Level, bool)
	EntityAt(x, y int) (sim.EntityID, bool)
}

var _ Presenter = (*view.Coordinator)(nil)

// GameOverFunc receives the final score of a finished session.
type GameOverFunc func(level config.Level, scores int)

// Controller routes input to the current session.
type Controller struct {
	presenter  Presenter
	factory    Factory
	onGameOver GameOverFunc
	logger     *log.Logger

	current Session
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// OnGameOver sets a hook called once per finished session.
func OnGameOver(fn GameOverFunc) Option {
	return func(c *Controller) {
		c.onGameOver = fn
	}
}

// New creates a controller with no session.
func New(presenter Presenter, factory Factory, opts ...Option) *Controller {
	c := &Controller{
		presenter: presenter,
		factory:   factory,
		logger:    log.New(io.Discard),
		current:   NoSession{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProfileFactory builds sessions from the difficulty profiles in cfg.
func ProfileFactory(cfg config.GameConfig, opts ...sim.Option) Factory {
	return func(level config.Level) *sim.Simulation {
		all := append(sim.ConfigOptions(cfg), opts...)
		return sim.New(cfg.Profiles.For(level), all...)
	}
}

// Session returns the current session variant.
func (c *Controller) Session() Session {
	return c.current
}

// Active returns the running session, if any.
func (c *Controller) Active() (*ActiveSession, bool) {
	a, ok := c.current.(*ActiveSession)
	return a, ok
}

// Click handles a completed click in canvas coordinates. On the menu it
// starts the game whose button was hit; otherwise it is ignored.
func (c *Controller) Click(x, y int) {
	if _, ok := c.current.(NoSession); !ok {
		return
	}
	level, ok := c.presenter.ButtonAt(x, y)
	if !ok {
		return
	}
	c.Start(level)
}

// Start begins a new session at the given difficulty. It does nothing
// while a session is already running.
func (c *Controller) Start(level config.Level) {
	if _, ok := c.current.(NoSession); !ok {
		return
	}

	s := c.factory(level)
	active := &ActiveSession{Level: level, Sim: s}
	c.current = active

	events.On(s.Bus(), events.KindGameOver, func(ev sim.GameOver) {
		c.finish(active, ev.Scores)
	})
	c.presenter.Bind(s)

	c.logger.Info("session started", "level", level, "lives", s.Lives())
}

// Press handles a pointer press or drag in canvas coordinates. Every
// visible shape under the pointer is destroyed, first spawned first.
func (c *Controller) Press(x, y int) {
	var last sim.EntityID
	for {
		active, ok := c.Active()
		if !ok || !active.Sim.Running() {
			return
		}
		id, ok := c.presenter.EntityAt(x, y)
		if !ok {
			return
		}
		if id == last {
			// Killed but still presented; stop instead of spinning.
			return
		}
		if !active.Sim.Kill(id) {
			c.logger.Warn("hit shape unknown to the session", "id", id)
			return
		}
		last = id
	}
}

// Tick advances the running session and reports whether one is still
// running afterwards.
func (c *Controller) Tick() bool {
	active, ok := c.Active()
	if !ok {
		return false
	}
	active.Sim.Tick()
	_, ok = c.Active()
	return ok
}

func (c *Controller) finish(active *ActiveSession, scores int) {
	if c.current != Session(active) {
		return
	}
	c.current = NoSession{}
	c.logger.Info("game over", "level", active.Level, "scores", scores)
	if c.onGameOver != nil {
		c.onGameOver(active.Level, scores)
	}
}
