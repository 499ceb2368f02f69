// Package sim implements one play session: spawning shapes, moving them,
// scoring clicks and counting lives. It publishes everything it does on an
// events.Bus and knows nothing about drawing or input devices.
package sim

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/ie-die/internal/config"
	"github.com/vovakirdan/ie-die/internal/events"
)

// State is the lifecycle state of a session.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "terminated"
}

// Bounds is the canvas the shapes fall through.
type Bounds struct {
	Width  int
	Height int
}

// Simulation owns the authoritative state of a session.
// Only Tick and Kill mutate it; nothing else may write the entity set.
type Simulation struct {
	bus     *events.Bus
	profile config.Profile
	bounds  Bounds
	size    int
	rng     *rand.Rand

	tickInterval  time.Duration
	spawnInterval time.Duration
	clock         time.Duration // Accumulated simulated time
	lastSpawn     time.Duration
	ticks         uint64

	entities map[EntityID]*Entity
	order    []EntityID // Insertion order of live entities
	nextID   EntityID

	scores int
	lives  int
	state  State
}

// Option customizes a Simulation.
type Option func(*Simulation)

// WithBounds sets the canvas size.
func WithBounds(width, height int) Option {
	return func(s *Simulation) {
		s.bounds = Bounds{Width: width, Height: height}
	}
}

// WithEntitySize sets the edge length of every shape.
func WithEntitySize(size int) Option {
	return func(s *Simulation) {
		s.size = size
	}
}

// WithTickInterval sets how much simulated time one Tick represents.
func WithTickInterval(d time.Duration) Option {
	return func(s *Simulation) {
		s.tickInterval = d
	}
}

// WithSpawnInterval sets how much simulated time must pass between spawns.
func WithSpawnInterval(d time.Duration) Option {
	return func(s *Simulation) {
		s.spawnInterval = d
	}
}

// WithSeed makes spawning deterministic.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// ConfigOptions turns a game configuration into simulation options.
func ConfigOptions(cfg config.GameConfig) []Option {
	return []Option{
		WithBounds(cfg.Canvas.Width, cfg.Canvas.Height),
		WithEntitySize(cfg.Entity.Size),
		WithTickInterval(cfg.Timing.Tick()),
		WithSpawnInterval(cfg.Timing.Spawn()),
	}
}

// New starts a session with the given difficulty profile.
// The session is Running until its lives reach zero.
func New(profile config.Profile, opts ...Option) *Simulation {
	defaults := config.DefaultGameConfig()
	s := &Simulation{
		bus:      events.NewBus(),
		profile:  profile,
		entities: make(map[EntityID]*Entity),
		scores:   0,
		lives:    profile.Lives,
		state:    StateRunning,
	}
	for _, opt := range ConfigOptions(defaults) {
		opt(s)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Subscribe registers a listener on the session's bus.
func (s *Simulation) Subscribe(kind events.Kind, fn events.Listener) events.Subscription {
	return s.bus.Subscribe(kind, fn)
}

// Unsubscribe removes a listener from the session's bus.
func (s *Simulation) Unsubscribe(kind events.Kind, sub events.Subscription) {
	s.bus.Unsubscribe(kind, sub)
}

// Bus exposes the session's bus for typed subscriptions with events.On.
func (s *Simulation) Bus() *events.Bus {
	return s.bus
}

// Tick advances the session by one tick interval. It is a no-op once the
// session has terminated.
//
// Order within a tick: at most one spawn, then every live entity in
// insertion order (its removal events are published before the next entity
// moves), then a single Update.
func (s *Simulation) Tick() {
	if s.state != StateRunning {
		return
	}

	s.ticks++
	s.clock += s.tickInterval

	if s.clock-s.lastSpawn > s.spawnInterval {
		s.lastSpawn = s.clock
		s.spawn()
	}

	for _, id := range slices.Clone(s.order) {
		e, ok := s.entities[id]
		if !ok {
			continue
		}

		e.Y += e.Speed
		if e.Y+e.Height <= s.bounds.Height {
			continue
		}

		// Reached the bottom
		if e.IsEnemy {
			s.loseLife()
			if s.state != StateRunning {
				return
			}
		}
		s.remove(id)
	}

	s.bus.Publish(Update{Tick: s.ticks, Entities: s.snapshot()})
}

// Kill destroys an entity on behalf of the player. Hostile shapes score,
// friendly ones cost a life. Unknown ids and terminated sessions are
// ignored. Returns whether the entity was destroyed.
func (s *Simulation) Kill(id EntityID) bool {
	if s.state != StateRunning {
		return false
	}
	e, ok := s.entities[id]
	if !ok {
		return false
	}

	if e.IsEnemy {
		s.scores += e.Points()
		s.bus.Publish(ScoresChanged{Scores: s.scores})
	} else {
		s.loseLife()
		if s.state != StateRunning {
			return true
		}
	}

	s.remove(id)
	return true
}

// Scores returns the current score. After game over it keeps the final score.
func (s *Simulation) Scores() int {
	return s.scores
}

// Lives returns the remaining lives.
func (s *Simulation) Lives() int {
	return s.lives
}

// State returns the lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// Running reports whether the session still accepts ticks.
func (s *Simulation) Running() bool {
	return s.state == StateRunning
}

// Profile returns the difficulty profile the session was started with.
func (s *Simulation) Profile() config.Profile {
	return s.profile
}

// Bounds returns the canvas size.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Ticks returns the number of ticks processed so far.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Entities returns copies of the live entities in insertion order.
func (s *Simulation) Entities() []Entity {
	out := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.entities[id])
	}
	return out
}

func (s *Simulation) spawn() {
	maxX := s.bounds.Width - s.size
	if maxX < 0 {
		maxX = 0
	}

	s.add(Entity{
		X:           s.rng.Intn(maxX + 1),
		Y:           -s.size,
		Speed:       s.profile.MinSpeed + s.rng.Intn(s.profile.MaxSpeed-s.profile.MinSpeed+1),
		Fluctuation: 1 + s.rng.Intn(2),
		IsEnemy:     s.rng.Intn(100) < s.profile.EnemyChance,
	})
}

// add inserts an entity into the live set and announces it.
// Width and height always come from the session's entity size.
func (s *Simulation) add(e Entity) Entity {
	s.nextID++
	e.ID = s.nextID
	e.Width = s.size
	e.Height = s.size

	stored := e
	s.entities[e.ID] = &stored
	s.order = append(s.order, e.ID)

	s.bus.Publish(AddEntity{Entity: e})
	return e
}

func (s *Simulation) remove(id EntityID) {
	if _, ok := s.entities[id]; !ok {
		return
	}
	delete(s.entities, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.bus.Publish(RemoveEntity{ID: id})
}

func (s *Simulation) loseLife() {
	s.lives--
	s.bus.Publish(LivesChanged{Lives: s.lives})
	s.checkGameOver()
}

func (s *Simulation) checkGameOver() {
	if s.lives > 0 || s.state != StateRunning {
		return
	}

	s.state = StateTerminated
	clear(s.entities)
	s.order = nil

	s.bus.Publish(GameOver{Scores: s.scores})
	s.bus.Reset()
}

func (s *Simulation) snapshot() map[EntityID]Entity {
	out := make(map[EntityID]Entity, len(s.entities))
	for id, e := range s.entities {
		out[id] = *e
	}
	return out
}
