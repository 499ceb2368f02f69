package sim

import "github.com/vovakirdan/ie-die/internal/core"

// EntityID identifies a falling shape within one session.
type EntityID int

// Entity is one falling shape.
type Entity struct {
	ID          EntityID
	X, Y        int // Top-left corner in canvas units
	Width       int
	Height      int
	Speed       int // Canvas units per tick
	Fluctuation int // Rolled at spawn, not applied to movement
	IsEnemy     bool
}

// Rect returns the entity's bounds.
func (e Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Points returns the score for destroying the entity. Faster hostiles
// are worth more.
func (e Entity) Points() int {
	if e.Speed < 10 {
		return 5
	}
	return 10
}
