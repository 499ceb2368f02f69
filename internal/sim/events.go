package sim

import "github.com/vovakirdan/ie-die/internal/events"

// AddEntity is published when a shape spawns.
type AddEntity struct {
	Entity Entity
}

// RemoveEntity is published when a shape leaves the live set.
type RemoveEntity struct {
	ID EntityID
}

// Update is published last in every tick. Entities is a copy of the live
// set at the end of the tick.
type Update struct {
	Tick     uint64
	Entities map[EntityID]Entity
}

// ScoresChanged carries the new score.
type ScoresChanged struct {
	Scores int
}

// LivesChanged carries the remaining lives.
type LivesChanged struct {
	Lives int
}

// GameOver is published once, when the last life is lost.
type GameOver struct {
	Scores int
}

func (AddEntity) Kind() events.Kind     { return events.KindAddEntity }
func (RemoveEntity) Kind() events.Kind  { return events.KindRemoveEntity }
func (Update) Kind() events.Kind        { return events.KindUpdate }
func (ScoresChanged) Kind() events.Kind { return events.KindScoresChanged }
func (LivesChanged) Kind() events.Kind  { return events.KindLivesChanged }
func (GameOver) Kind() events.Kind      { return events.KindGameOver }
