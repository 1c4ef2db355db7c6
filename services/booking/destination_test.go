package booking

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/catalog"
	"github.com/kamesh952/KalmHolidays/services/events"
	"github.com/kamesh952/KalmHolidays/services/wishlist"
)

// seqIDs mints deterministic booking references for tests.
type seqIDs struct {
	n int
}

func (s *seqIDs) BookingID(prefix string) string {
	s.n++
	return fmt.Sprintf("%s%06d", prefix, s.n)
}

func newTestService() (*DefaultService, *events.Bus) {
	bus := events.NewBus(zap.NewNop())
	svc := &DefaultService{
		Store:   store.NewMemStore(),
		Bus:     bus,
		Catalog: catalog.NewStaticCatalog(),
		IDs:     &seqIDs{},
		Logger:  zap.NewNop(),
	}
	return svc, bus
}

// failingStore rejects every write, simulating exhausted storage.
type failingStore struct {
	store.Store
}

var errStorageFull = errors.New("storage full")

func (f failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errStorageFull
}

func TestBookDestination(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	dest := models.Destination{ID: "3", Label: "Dubai - Luxury Redefined", Price: "₹1,53,000"}
	booked, outcome, err := svc.BookDestination(ctx, dest)
	if err != nil {
		t.Fatalf("BookDestination: %v", err)
	}
	if outcome != OutcomeBooked {
		t.Fatalf("got outcome %q, want %q", outcome, OutcomeBooked)
	}
	if booked.ID != dest.ID || booked.Label != dest.Label {
		t.Fatalf("booking does not carry the catalog payload: %+v", booked)
	}
	if !strings.HasPrefix(booked.BookingID, "BK-") {
		t.Fatalf("booking reference %q lacks BK- prefix", booked.BookingID)
	}
	if booked.BookingDate.IsZero() {
		t.Fatal("booking date not stamped")
	}

	got := svc.Destinations(ctx)
	if len(got) != 1 || !reflect.DeepEqual(got[0], *booked) {
		t.Fatalf("persisted collection %+v does not match returned booking %+v", got, booked)
	}
}

func TestBookDistinctDestinationsMintDistinctReferences(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	const n = 8
	for i := 0; i < n; i++ {
		dest := models.Destination{ID: fmt.Sprintf("dest-%d", i), Label: fmt.Sprintf("Destination %d", i)}
		if _, outcome, err := svc.BookDestination(ctx, dest); err != nil || outcome != OutcomeBooked {
			t.Fatalf("booking %d: outcome=%q err=%v", i, outcome, err)
		}
	}

	got := svc.Destinations(ctx)
	if len(got) != n {
		t.Fatalf("got %d bookings, want %d", len(got), n)
	}
	refs := map[string]bool{}
	for _, b := range got {
		if refs[b.BookingID] {
			t.Fatalf("duplicate booking reference %q", b.BookingID)
		}
		refs[b.BookingID] = true
	}
}

func TestBookAlreadyBookedIsBenignNoOp(t *testing.T) {
	svc, bus := newTestService()
	ctx := context.Background()

	dest := models.Destination{ID: "1", Label: "Switzerland - Snowy Peaks"}
	if _, _, err := svc.BookDestination(ctx, dest); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	before := svc.Destinations(ctx)

	notified := false
	bus.Subscribe(events.TopicBookingsUpdated, func() { notified = true })

	booked, outcome, err := svc.BookDestination(ctx, dest)
	if err != nil {
		t.Fatalf("second booking: %v", err)
	}
	if outcome != OutcomeAlreadyBooked || booked != nil {
		t.Fatalf("got outcome=%q booking=%+v, want alreadyBooked and nil", outcome, booked)
	}
	if notified {
		t.Fatal("rejected duplicate must not publish")
	}
	if got := svc.Destinations(ctx); !reflect.DeepEqual(got, before) {
		t.Fatalf("collection changed by rejected duplicate:\n got %+v\nwant %+v", got, before)
	}
}

func TestBookRequiresCatalogID(t *testing.T) {
	svc, _ := newTestService()

	if _, _, err := svc.BookDestination(context.Background(), models.Destination{Label: "nameless"}); !errors.Is(err, ErrMissingCatalogID) {
		t.Fatalf("want ErrMissingCatalogID, got %v", err)
	}
}

func TestCancelUnknownReferenceIsNoOp(t *testing.T) {
	svc, bus := newTestService()
	ctx := context.Background()

	notified := false
	bus.Subscribe(events.TopicBookingsUpdated, func() { notified = true })

	cancelled, err := svc.CancelBooking(ctx, "BK-missing")
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if cancelled || notified {
		t.Fatalf("cancel of unknown ref: cancelled=%v notified=%v, want both false", cancelled, notified)
	}
}

func TestCancelByCatalogIDFallback(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.BookDestination(ctx, models.Destination{ID: "7", Label: "Thailand - Beach Paradise"})

	cancelled, err := svc.CancelBooking(ctx, "7")
	if err != nil || !cancelled {
		t.Fatalf("cancel by catalog id: cancelled=%v err=%v", cancelled, err)
	}
	if got := svc.Destinations(ctx); len(got) != 0 {
		t.Fatalf("collection not emptied: %+v", got)
	}
}

func TestBookCancelRebookMintsFreshReference(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	dest := models.Destination{ID: "dest-1", Label: "Paris"}

	first, outcome, err := svc.BookDestination(ctx, dest)
	if err != nil || outcome != OutcomeBooked {
		t.Fatalf("book: outcome=%q err=%v", outcome, err)
	}
	if got := svc.Destinations(ctx); len(got) != 1 || got[0].ID != "dest-1" {
		t.Fatalf("after book: %+v", got)
	}

	cancelled, err := svc.CancelBooking(ctx, first.BookingID)
	if err != nil || !cancelled {
		t.Fatalf("cancel: cancelled=%v err=%v", cancelled, err)
	}
	if got := svc.Destinations(ctx); len(got) != 0 {
		t.Fatalf("after cancel: %+v", got)
	}

	second, outcome, err := svc.BookDestination(ctx, dest)
	if err != nil || outcome != OutcomeBooked {
		t.Fatalf("rebook: outcome=%q err=%v", outcome, err)
	}
	if second.BookingID == first.BookingID {
		t.Fatalf("rebooking reused booking reference %q", first.BookingID)
	}
}

func TestBookingAndWishlistAreIndependent(t *testing.T) {
	svc, bus := newTestService()
	ctx := context.Background()

	wl := &wishlist.DefaultService{Store: svc.Store, Bus: bus, Logger: zap.NewNop()}

	if _, err := wl.Toggle(ctx, models.WishlistEntry{ID: "x", Label: "Dream trip"}); err != nil {
		t.Fatalf("wishlist toggle: %v", err)
	}
	if _, outcome, err := svc.BookDestination(ctx, models.Destination{ID: "x", Label: "Dream trip"}); err != nil || outcome != OutcomeBooked {
		t.Fatalf("book: outcome=%q err=%v", outcome, err)
	}

	if got := svc.Destinations(ctx); len(got) != 1 || got[0].ID != "x" {
		t.Fatalf("bookings: %+v", got)
	}
	if got := wl.List(ctx); len(got) != 1 || got[0].ID != "x" {
		t.Fatalf("booking removed the wishlist entry: %+v", got)
	}
}

func TestBookCarUsesSameCollectionAndGuard(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	car := models.CarRental{ID: "p5", Location: "Goa", CarType: "Convertible", Price: "₹3,200/day"}
	booked, outcome, err := svc.BookCar(ctx, car)
	if err != nil || outcome != OutcomeBooked {
		t.Fatalf("BookCar: outcome=%q err=%v", outcome, err)
	}
	if booked.Label != "Goa - Convertible" {
		t.Fatalf("car label %q, want location and type", booked.Label)
	}

	if _, outcome, _ := svc.BookCar(ctx, car); outcome != OutcomeAlreadyBooked {
		t.Fatalf("duplicate car booking outcome %q, want alreadyBooked", outcome)
	}

	// Cars and destinations share one collection, so the guard crosses kinds.
	if _, outcome, _ := svc.BookDestination(ctx, models.Destination{ID: "p5", Label: "Goa"}); outcome != OutcomeAlreadyBooked {
		t.Fatalf("cross-kind duplicate outcome %q, want alreadyBooked", outcome)
	}
}

func TestBookingFanOutObservesPostWriteState(t *testing.T) {
	svc, bus := newTestService()
	ctx := context.Background()

	var observed []int
	for i := 0; i < 3; i++ {
		bus.Subscribe(events.TopicBookingsUpdated, func() {
			observed = append(observed, len(svc.Destinations(ctx)))
		})
	}

	if _, _, err := svc.BookDestination(ctx, models.Destination{ID: "9", Label: "Switzerland-Land of Joy"}); err != nil {
		t.Fatalf("book: %v", err)
	}

	if len(observed) != 3 {
		t.Fatalf("got %d reload invocations, want 3", len(observed))
	}
	for _, n := range observed {
		if n != 1 {
			t.Fatalf("subscriber observed %d bookings, want post-write state of 1", n)
		}
	}
}

func TestBookSurfacesWriteFailure(t *testing.T) {
	svc, _ := newTestService()
	svc.Store = failingStore{Store: svc.Store}

	_, _, err := svc.BookDestination(context.Background(), models.Destination{ID: "1", Label: "x"})
	if !errors.Is(err, errStorageFull) {
		t.Fatalf("want write failure surfaced, got %v", err)
	}
}
