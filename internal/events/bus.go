// Package events provides the synchronous publish/subscribe bus that the
// simulation uses to notify the presentation and input layers.
//
// The bus is not goroutine-safe. Everything that touches it runs on one
// update loop.
package events

// Listener receives published events.
type Listener func(Event)

// Subscription identifies one registration. Funcs are not comparable in Go,
// so the token is what Unsubscribe matches on.
type Subscription uint64

type entry struct {
	sub Subscription
	fn  Listener
}

// Bus dispatches events to listeners registered per kind, plus a wildcard
// bucket used for kinds that have no bucket of their own.
type Bus struct {
	buckets map[Kind][]entry
	nextSub Subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		buckets: map[Kind][]entry{KindAny: nil},
	}
}

// Subscribe appends a listener to the bucket of kind, creating it if absent.
// KindAny registers into the wildcard bucket. Registering the same func twice
// is allowed; both registrations fire.
func (b *Bus) Subscribe(kind Kind, fn Listener) Subscription {
	b.nextSub++
	sub := b.nextSub
	b.buckets[kind] = append(b.buckets[kind], entry{sub: sub, fn: fn})
	return sub
}

// Unsubscribe removes a registration. When kind has no bucket the wildcard
// bucket is searched instead. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(kind Kind, sub Subscription) {
	kind = b.route(kind)
	entries := b.buckets[kind]
	for i, e := range entries {
		if e.sub == sub {
			b.buckets[kind] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Publish calls every listener of the event's bucket in registration order.
// Listeners see a snapshot taken before the first call: registrations made
// or removed during dispatch take effect from the next Publish on.
// A panicking listener aborts the dispatch and the panic reaches the caller.
func (b *Bus) Publish(ev Event) {
	entries := b.buckets[b.route(ev.Kind())]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)

	for _, e := range snapshot {
		e.fn(ev)
	}
}

// Len returns how many listeners a Publish of kind would reach.
func (b *Bus) Len(kind Kind) int {
	return len(b.buckets[b.route(kind)])
}

// Reset drops every registration.
func (b *Bus) Reset() {
	b.buckets = map[Kind][]entry{KindAny: nil}
}

func (b *Bus) route(kind Kind) Kind {
	if _, ok := b.buckets[kind]; ok {
		return kind
	}
	return KindAny
}

// On subscribes a listener that only cares about one payload type.
// Events of other types arriving through the same bucket are skipped.
func On[T Event](b *Bus, kind Kind, fn func(T)) Subscription {
	return b.Subscribe(kind, func(ev Event) {
		if typed, ok := ev.(T); ok {
			fn(typed)
		}
	})
}
