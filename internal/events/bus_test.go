package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scoreEvent struct{ n int }

func (scoreEvent) Kind() Kind { return KindScoresChanged }

type livesEvent struct{ n int }

func (livesEvent) Kind() Kind { return KindLivesChanged }

func TestPublishInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var calls []string

	bus.Subscribe(KindScoresChanged, func(Event) { calls = append(calls, "a") })
	bus.Subscribe(KindScoresChanged, func(Event) { calls = append(calls, "b") })
	bus.Subscribe(KindLivesChanged, func(Event) { calls = append(calls, "lives") })

	bus.Publish(scoreEvent{n: 5})

	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestPublishPassesPayload(t *testing.T) {
	bus := NewBus()
	var got Event

	bus.Subscribe(KindScoresChanged, func(ev Event) { got = ev })
	bus.Publish(scoreEvent{n: 10})

	assert.Equal(t, scoreEvent{n: 10}, got)
}

func TestDuplicateListenersEachFire(t *testing.T) {
	bus := NewBus()
	count := 0
	fn := func(Event) { count++ }

	bus.Subscribe(KindScoresChanged, fn)
	bus.Subscribe(KindScoresChanged, fn)
	bus.Publish(scoreEvent{})

	assert.Equal(t, 2, count)
}

func TestWildcardBucket(t *testing.T) {
	bus := NewBus()
	var wildcard, explicit int

	bus.Subscribe(KindAny, func(Event) { wildcard++ })

	// No explicit bucket yet: the wildcard bucket receives it.
	bus.Publish(livesEvent{})
	assert.Equal(t, 1, wildcard)

	// Once the kind has its own bucket the wildcard bucket is bypassed.
	bus.Subscribe(KindLivesChanged, func(Event) { explicit++ })
	bus.Publish(livesEvent{})
	assert.Equal(t, 1, wildcard)
	assert.Equal(t, 1, explicit)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	var a, b int

	subA := bus.Subscribe(KindScoresChanged, func(Event) { a++ })
	bus.Subscribe(KindScoresChanged, func(Event) { b++ })

	bus.Unsubscribe(KindScoresChanged, subA)
	bus.Publish(scoreEvent{})

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 1, bus.Len(KindScoresChanged))
}

func TestUnsubscribeUnknownIsNoop(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(KindScoresChanged, func(Event) {})

	assert.NotPanics(t, func() {
		bus.Unsubscribe(KindScoresChanged, Subscription(999))
		bus.Unsubscribe(KindGameOver, Subscription(1))
	})
	assert.Equal(t, 1, bus.Len(KindScoresChanged))
}

func TestUnsubscribeFallsBackToWildcard(t *testing.T) {
	bus := NewBus()
	count := 0
	sub := bus.Subscribe(KindAny, func(Event) { count++ })

	// KindGameOver has no bucket, so the wildcard registration is removed.
	bus.Unsubscribe(KindGameOver, sub)
	bus.Publish(livesEvent{})

	assert.Equal(t, 0, count)
}

func TestSubscribeDuringDispatchUsesSnapshot(t *testing.T) {
	bus := NewBus()
	var outerL, mCalls int
	depth := 0

	bus.Subscribe(KindScoresChanged, func(Event) {
		outerL++
		if depth > 0 {
			return
		}
		depth++
		bus.Subscribe(KindScoresChanged, func(Event) { mCalls++ })
		bus.Publish(scoreEvent{}) // inner dispatch sees M
		depth--
	})

	bus.Publish(scoreEvent{})

	// L ran for the outer and the inner publish, M only for the inner one.
	assert.Equal(t, 2, outerL)
	assert.Equal(t, 1, mCalls)
}

func TestUnsubscribeDuringDispatchUsesSnapshot(t *testing.T) {
	bus := NewBus()
	var second int
	var secondSub Subscription

	bus.Subscribe(KindScoresChanged, func(Event) {
		bus.Unsubscribe(KindScoresChanged, secondSub)
	})
	secondSub = bus.Subscribe(KindScoresChanged, func(Event) { second++ })

	bus.Publish(scoreEvent{})
	assert.Equal(t, 1, second, "removal applies to the next dispatch only")

	bus.Publish(scoreEvent{})
	assert.Equal(t, 1, second)
}

func TestListenerPanicPropagates(t *testing.T) {
	bus := NewBus()
	reached := false

	bus.Subscribe(KindScoresChanged, func(Event) { panic("listener failed") })
	bus.Subscribe(KindScoresChanged, func(Event) { reached = true })

	assert.PanicsWithValue(t, "listener failed", func() {
		bus.Publish(scoreEvent{})
	})
	assert.False(t, reached, "dispatch stops at the failing listener")
}

func TestOnFiltersByType(t *testing.T) {
	bus := NewBus()
	var scores []int

	On(bus, KindAny, func(ev scoreEvent) { scores = append(scores, ev.n) })

	bus.Publish(scoreEvent{n: 5})
	bus.Publish(livesEvent{n: 3})
	bus.Publish(scoreEvent{n: 10})

	require.Len(t, scores, 2)
	assert.Equal(t, []int{5, 10}, scores)
}

func TestReset(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.Subscribe(KindScoresChanged, func(Event) { count++ })
	bus.Subscribe(KindAny, func(Event) { count++ })

	bus.Reset()
	bus.Publish(scoreEvent{})

	assert.Equal(t, 0, count)
	assert.Equal(t, 0, bus.Len(KindScoresChanged))
}

func TestKindString(t *testing.T) {
	for _, k := range SimulationKinds() {
		assert.NotEqual(t, "unknown", k.String())
	}
	assert.Equal(t, "any", KindAny.String())
}
