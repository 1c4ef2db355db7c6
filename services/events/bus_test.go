package events

import (
	"testing"

	"go.uber.org/zap"
)

func TestPublishFansOutToEverySubscriber(t *testing.T) {
	bus := NewBus(zap.NewNop())

	counts := make([]int, 3)
	for i := range counts {
		i := i
		bus.Subscribe(TopicBookingsUpdated, func() { counts[i]++ })
	}

	bus.Publish(TopicBookingsUpdated)

	for i, n := range counts {
		if n != 1 {
			t.Fatalf("subscriber %d ran %d times, want 1", i, n)
		}
	}
}

func TestPublishIsSynchronous(t *testing.T) {
	bus := NewBus(zap.NewNop())

	done := false
	bus.Subscribe(TopicWishlistUpdated, func() { done = true })

	bus.Publish(TopicWishlistUpdated)
	if !done {
		t.Fatal("handler had not completed when Publish returned")
	}
}

func TestTopicsAreIndependent(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var wishlist, bookings int
	bus.Subscribe(TopicWishlistUpdated, func() { wishlist++ })
	bus.Subscribe(TopicBookingsUpdated, func() { bookings++ })

	bus.Publish(TopicWishlistUpdated)

	if wishlist != 1 || bookings != 0 {
		t.Fatalf("got wishlist=%d bookings=%d, want 1 and 0", wishlist, bookings)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus(zap.NewNop())

	calls := 0
	sub := bus.Subscribe(TopicBookingsUpdated, func() { calls++ })

	bus.Publish(TopicBookingsUpdated)
	sub.Unsubscribe()
	bus.Publish(TopicBookingsUpdated)

	if calls != 1 {
		t.Fatalf("got %d calls, want 1", calls)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	bus := NewBus(zap.NewNop())

	other := 0
	sub := bus.Subscribe(TopicBookingsUpdated, func() {})
	bus.Subscribe(TopicBookingsUpdated, func() { other++ })

	sub.Unsubscribe()
	sub.Unsubscribe()

	bus.Publish(TopicBookingsUpdated)
	if other != 1 {
		t.Fatalf("surviving subscriber ran %d times, want 1", other)
	}
}

func TestPanickingSubscriberIsIsolated(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var before, after int
	bus.Subscribe(TopicBookingsUpdated, func() { before++ })
	bus.Subscribe(TopicBookingsUpdated, func() { panic("broken view") })
	bus.Subscribe(TopicBookingsUpdated, func() { after++ })

	bus.Publish(TopicBookingsUpdated)

	if before != 1 || after != 1 {
		t.Fatalf("got before=%d after=%d, want both 1", before, after)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus(zap.NewNop())
	// Must not block or panic.
	bus.Publish(TopicWishlistUpdated)
	bus.Publish(TopicBookingsUpdated)
}

func TestSubscribersRunInRegistrationOrder(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		bus.Subscribe(TopicBookingsUpdated, func() { order = append(order, i) })
	}

	bus.Publish(TopicBookingsUpdated)

	for i, got := range order {
		if got != i {
			t.Fatalf("dispatch order %v, want ascending registration order", order)
		}
	}
}
