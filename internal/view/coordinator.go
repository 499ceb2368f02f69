// Package view keeps the presentation side of a session in sync with the
// simulation. It mirrors the live shapes from simulation events, decides
// what to redraw and answers hit-tests for the input layer. The actual
// drawing is done by a Surface supplied by the platform.
package view

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ie-die/internal/assets"
	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/core"
	"github.com/vovakirdan/ie-die/internal/events"
	"github.com/vovakirdan/ie-die/internal/sim"
)

// Texts drawn by the coordinator.
const (
	TitleText    = "IE, Die!"
	GameOverText = "Game over"
	ScoresLabel  = "Scores: "
	LivesLabel   = "Lives: "
)

// Menu button layout in canvas units.
const (
	buttonWidth   = 100
	buttonHeight  = 80
	buttonSpacing = 125
	menuWidth     = 350
)

// Surface draws onto the platform's screen. Coordinates are canvas units.
type Surface interface {
	// Size returns the logical canvas size.
	Size() (width, height int)
	Clear()
	DrawSprite(s Sprite)
	DrawScores(scores int)
	DrawLives(lives int)
	DrawMenu(title string, buttons []Button)
	DrawGameOver(text string)
}

// AssetLoader loads sprite art asynchronously. done must be called on the
// same loop that delivers simulation events, exactly once per Load.
type AssetLoader interface {
	Load(v assets.Variant, done func(assets.Sprite, error))
}

// Scheduler runs a callback on the update loop after a delay.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Sprite is the presentation mirror of one simulation entity.
type Sprite struct {
	ID      sim.EntityID
	Bounds  core.Rect
	Variant assets.Variant
	Art     assets.Sprite
	Loaded  bool
	Failed  bool // Load failed; the sprite stays invisible
}

// Button is one difficulty button of the menu.
type Button struct {
	Level  config.Level
	Bounds core.Rect
	Color  core.Color
}

type binding struct {
	kind events.Kind
	sub  events.Subscription
}

// Coordinator reacts to simulation events and drives the Surface.
type Coordinator struct {
	surface       Surface
	loader        AssetLoader
	scheduler     Scheduler
	logger        *log.Logger
	rng           *rand.Rand
	gameOverDelay time.Duration

	session  *sim.Simulation // nil while the menu is shown
	bindings []binding
	sprites  map[sim.EntityID]*Sprite
	order    []sim.EntityID
	scores   int
	lives    int
}

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for degraded states.
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) {
		c.logger = l
	}
}

// WithSeed makes the choice of friendly pictures deterministic.
func WithSeed(seed int64) Option {
	return func(c *Coordinator) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGameOverDelay sets how long the game over banner stays up.
func WithGameOverDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		c.gameOverDelay = d
	}
}

// NewCoordinator creates a coordinator showing the menu.
func NewCoordinator(surface Surface, loader AssetLoader, scheduler Scheduler, opts ...Option) *Coordinator {
	c := &Coordinator{
		surface:       surface,
		loader:        loader,
		scheduler:     scheduler,
		logger:        log.New(io.Discard),
		gameOverDelay: config.DefaultGameConfig().Timing.GameOverDelay(),
		sprites:       make(map[sim.EntityID]*Sprite),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Bind starts presenting a session. Any previously bound session is
// released first.
func (c *Coordinator) Bind(s *sim.Simulation) {
	c.unbind()

	c.session = s
	c.sprites = make(map[sim.EntityID]*Sprite)
	c.order = nil
	c.scores = s.Scores()
	c.lives = s.Lives()
	c.surface.Clear()

	bus := s.Bus()
	c.bindings = []binding{
		{events.KindUpdate, events.On(bus, events.KindUpdate, c.onUpdate)},
		{events.KindAddEntity, events.On(bus, events.KindAddEntity, c.onAddEntity)},
		{events.KindRemoveEntity, events.On(bus, events.KindRemoveEntity, c.onRemoveEntity)},
		{events.KindScoresChanged, events.On(bus, events.KindScoresChanged, c.onScoresChanged)},
		{events.KindLivesChanged, events.On(bus, events.KindLivesChanged, c.onLivesChanged)},
		{events.KindGameOver, events.On(bus, events.KindGameOver, c.onGameOver)},
	}
}

// Bound reports whether a session is being presented.
func (c *Coordinator) Bound() bool {
	return c.session != nil
}

// Redraw clears the surface and draws the current state: the sprites and
// overlays of the bound session, or the menu.
func (c *Coordinator) Redraw() {
	c.surface.Clear()

	if c.session == nil {
		c.surface.DrawMenu(TitleText, c.Buttons())
		return
	}

	for _, id := range c.order {
		if sp := c.sprites[id]; sp.Loaded {
			c.surface.DrawSprite(*sp)
		}
	}
	c.surface.DrawScores(c.scores)
	c.surface.DrawLives(c.lives)
}

// Buttons returns the menu layout for the current canvas size.
func (c *Coordinator) Buttons() []Button {
	w, h := c.surface.Size()
	x := (w - menuWidth) / 2
	y := h / 2
	colors := []core.Color{core.ColorEasyButton, core.ColorMediumButton, core.ColorHardButton}

	buttons := make([]Button, 0, len(colors))
	for i, level := range config.Levels() {
		buttons = append(buttons, Button{
			Level:  level,
			Bounds: core.NewRect(x+i*buttonSpacing, y, buttonWidth, buttonHeight),
			Color:  colors[i],
		})
	}
	return buttons
}

// ButtonAt returns the difficulty whose button contains the point.
func (c *Coordinator) ButtonAt(x, y int) (config.Level, bool) {
	for _, b := range c.Buttons() {
		if b.Bounds.HitTest(x, y) {
			return b.Level, true
		}
	}
	return config.LevelEasy, false
}

// EntityAt returns the first visible sprite, in spawn order, containing
// the point. Sprites still loading or failed to load cannot be hit.
func (c *Coordinator) EntityAt(x, y int) (sim.EntityID, bool) {
	for _, id := range c.order {
		sp := c.sprites[id]
		if sp.Loaded && sp.Bounds.HitTest(x, y) {
			return id, true
		}
	}
	return 0, false
}

// Sprites returns copies of the presentation entities in spawn order.
func (c *Coordinator) Sprites() []Sprite {
	out := make([]Sprite, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.sprites[id])
	}
	return out
}

func (c *Coordinator) onAddEntity(ev sim.AddEntity) {
	sp := &Sprite{
		ID:      ev.Entity.ID,
		Bounds:  ev.Entity.Rect(),
		Variant: assets.PickVariant(ev.Entity.IsEnemy, c.rng),
	}
	c.sprites[sp.ID] = sp
	c.order = append(c.order, sp.ID)

	c.loader.Load(sp.Variant, func(art assets.Sprite, err error) {
		c.onLoaded(sp, art, err)
	})
}

func (c *Coordinator) onLoaded(sp *Sprite, art assets.Sprite, err error) {
	// The entity may be gone, or a new session bound, before the load finishes.
	if c.sprites[sp.ID] != sp {
		return
	}
	if err != nil {
		sp.Failed = true
		c.logger.Warn("sprite load failed, shape stays invisible", "id", sp.ID, "variant", sp.Variant, "error", err)
		return
	}
	sp.Art = art
	sp.Loaded = true
}

func (c *Coordinator) onRemoveEntity(ev sim.RemoveEntity) {
	if _, ok := c.sprites[ev.ID]; !ok {
		return
	}
	delete(c.sprites, ev.ID)
	if i := slices.Index(c.order, ev.ID); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	c.logger.Debug("sprite removed", "id", ev.ID)
}

func (c *Coordinator) onUpdate(ev sim.Update) {
	for id, e := range ev.Entities {
		if sp, ok := c.sprites[id]; ok {
			sp.Bounds = e.Rect()
		}
	}
	c.Redraw()
}

func (c *Coordinator) onScoresChanged(ev sim.ScoresChanged) {
	c.scores = ev.Scores
	c.surface.DrawScores(c.scores)
}

func (c *Coordinator) onLivesChanged(ev sim.LivesChanged) {
	c.lives = ev.Lives
	c.surface.DrawLives(c.lives)
}

func (c *Coordinator) onGameOver(sim.GameOver) {
	c.unbind()
	c.surface.DrawGameOver(GameOverText)
	c.scheduler.After(c.gameOverDelay, c.Redraw)
}

func (c *Coordinator) unbind() {
	if c.session == nil {
		return
	}
	for _, b := range c.bindings {
		c.session.Unsubscribe(b.kind, b.sub)
	}
	c.bindings = nil
	c.session = nil
	c.sprites = make(map[sim.EntityID]*Sprite)
	c.order = nil
}
