// Package events is the change-notification bus that keeps independently
// mounted views of the booking collections consistent. Writers persist their
// change first, then publish the collection's topic; every subscriber reloads
// its slice from the store in response. Notifications carry no payload, so a
// subscriber can never trust stale event data over a fresh load.
package events

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Topic is a named notification channel signalling "a collection changed".
type Topic string

const (
	// TopicWishlistUpdated fires after any wishlist write.
	TopicWishlistUpdated Topic = "wishlistUpdated"
	// TopicBookingsUpdated fires after any write to the destination, hotel
	// form or flight collections. One coarse topic covers all three;
	// subscribers reload every collection they display.
	TopicBookingsUpdated Topic = "bookingsUpdated"
)

// Handler reacts to a publication. Handlers reload state and must not publish
// back into the bus.
type Handler func()

// Bus dispatches topic publications synchronously to every registered
// subscriber. Publishers and subscribers never learn of each other; any
// number of either may exist per topic.
type Bus struct {
	logger *zap.Logger

	mu     sync.Mutex
	subs   map[Topic]map[int]Handler
	nextID int

	// dispatchMu serializes publications so that when a writer's publish
	// call returns, every subscriber has completed its reload and no later
	// publish has interleaved a stale view in between.
	dispatchMu sync.Mutex
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		logger: logger,
		subs:   make(map[Topic]map[int]Handler),
	}
}

// Subscription is the handle returned by Subscribe. Components retain it for
// the lifetime of their mount and release it on unmount.
type Subscription struct {
	bus   *Bus
	topic Topic
	id    int
	once  sync.Once
}

// Unsubscribe deregisters the handler. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		if handlers, ok := s.bus.subs[s.topic]; ok {
			delete(handlers, s.id)
		}
	})
}

// Subscribe registers handler to run on every future publication of topic
// until the returned subscription is released.
func (b *Bus) Subscribe(topic Topic, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = handler
	return &Subscription{bus: b, topic: topic, id: id}
}

// Publish synchronously runs every handler currently subscribed to topic, in
// registration order. Fire and forget: nothing is queued or persisted. A
// panicking handler is isolated and the remaining handlers still run.
func (b *Bus) Publish(topic Topic) {
	b.dispatchMu.Lock()
	defer b.dispatchMu.Unlock()

	b.mu.Lock()
	ids := make([]int, 0, len(b.subs[topic]))
	for id := range b.subs[topic] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, b.subs[topic][id])
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		b.dispatch(topic, handler)
	}
}

func (b *Bus) dispatch(topic Topic, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("events: subscriber panicked",
				zap.String("topic", string(topic)), zap.Any("panic", r))
		}
	}()
	handler()
}
