package events

// Kind enumerates the events a simulation can publish.
type Kind int

const (
	// KindAny names the wildcard bucket. It is never the kind of an event.
	KindAny Kind = iota
	KindAddEntity
	KindRemoveEntity
	KindUpdate
	KindScoresChanged
	KindLivesChanged
	KindGameOver
)

// String returns a readable name for logs.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindAddEntity:
		return "addEntity"
	case KindRemoveEntity:
		return "removeEntity"
	case KindUpdate:
		return "update"
	case KindScoresChanged:
		return "scoresChanged"
	case KindLivesChanged:
		return "livesChanged"
	case KindGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// SimulationKinds lists every kind a simulation publishes.
func SimulationKinds() []Kind {
	return []Kind{
		KindAddEntity,
		KindRemoveEntity,
		KindUpdate,
		KindScoresChanged,
		KindLivesChanged,
		KindGameOver,
	}
}

// Event is the payload passed to listeners.
type Event interface {
	Kind() Kind
}
