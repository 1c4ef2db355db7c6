package wishlist

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/events"
)

func newTestService() (*DefaultService, *events.Bus) {
	bus := events.NewBus(zap.NewNop())
	svc := &DefaultService{
		Store:  store.NewMemStore(),
		Bus:    bus,
		Logger: zap.NewNop(),
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

func TestToggleAddsWhenAbsent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	entry := models.WishlistEntry{ID: "2", Label: "Japan - Cherry Blossoms"}
	outcome, err := svc.Toggle(ctx, entry)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if outcome != OutcomeAdded {
		t.Fatalf("got outcome %q, want %q", outcome, OutcomeAdded)
	}
	got := svc.List(ctx)
	if len(got) != 1 || got[0] != entry {
		t.Fatalf("got %+v, want exactly the toggled entry", got)
	}
}

func TestTogglePairRestoresOriginalCollection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, models.WishlistEntry{ID: "1", Label: "Switzerland - Snowy Peaks"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	original := svc.List(ctx)

	entry := models.WishlistEntry{ID: "5", Label: "Italy - Cultural Delight"}
	if outcome, _ := svc.Toggle(ctx, entry); outcome != OutcomeAdded {
		t.Fatalf("first toggle: want added, got %q", outcome)
	}
	if outcome, _ := svc.Toggle(ctx, entry); outcome != OutcomeRemoved {
		t.Fatalf("second toggle: want removed, got %q", outcome)
	}

	if got := svc.List(ctx); !reflect.DeepEqual(got, original) {
		t.Fatalf("toggle pair did not restore collection:\n got %+v\nwant %+v", got, original)
	}
}

func TestToggleNeverDuplicatesIDs(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// An arbitrary interleaving of toggles over three ids.
	sequence := []string{"1", "2", "1", "3", "2", "2", "1", "3", "3", "3"}
	for _, id := range sequence {
		if _, err := svc.Toggle(ctx, models.WishlistEntry{ID: id, Label: "dest " + id}); err != nil {
			t.Fatalf("Toggle %q: %v", id, err)
		}

		seen := map[string]bool{}
		for _, item := range svc.List(ctx) {
			if seen[item.ID] {
				t.Fatalf("duplicate id %q after toggling %v", item.ID, sequence)
			}
			seen[item.ID] = true
		}
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	svc, bus := newTestService()
	ctx := context.Background()

	notified := 0
	bus.Subscribe(events.TopicWishlistUpdated, func() { notified++ })

	removed, err := svc.Remove(ctx, "missing")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed {
		t.Fatal("want removed=false for absent id")
	}
	if notified != 0 {
		t.Fatal("no-op remove must not publish")
	}
}

func TestRemoveExisting(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.Toggle(ctx, models.WishlistEntry{ID: "4", Label: "Egypt - Ancient Wonders"})
	svc.Toggle(ctx, models.WishlistEntry{ID: "6", Label: "Australia - Scenic Coastlines"})

	removed, err := svc.Remove(ctx, "4")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !removed {
		t.Fatal("want removed=true")
	}
	got := svc.List(ctx)
	if len(got) != 1 || got[0].ID != "6" {
		t.Fatalf("got %+v, want only id 6", got)
	}
}

func TestTogglePublishesWishlistTopic(t *testing.T) {
	svc, bus := newTestService()
	ctx := context.Background()

	var observed []int
	for i := 0; i < 3; i++ {
		bus.Subscribe(events.TopicWishlistUpdated, func() {
			observed = append(observed, len(svc.List(ctx)))
		})
	}

	svc.Toggle(ctx, models.WishlistEntry{ID: "8", Label: "Malaysia - Urban Adventures"})

	if len(observed) != 3 {
		t.Fatalf("got %d reload invocations, want 3", len(observed))
	}
	for _, n := range observed {
		if n != 1 {
			t.Fatalf("subscriber observed %d entries, want post-write state of 1", n)
		}
	}
}

func TestToggleSurfacesWriteFailure(t *testing.T) {
	svc, bus := newTestService()
	svc.Store = failingStore{Store: svc.Store}
	ctx := context.Background()

	notified := false
	bus.Subscribe(events.TopicWishlistUpdated, func() { notified = true })

	_, err := svc.Toggle(ctx, models.WishlistEntry{ID: "1", Label: "x"})
	if !errors.Is(err, errStorageFull) {
		t.Fatalf("want write failure surfaced, got %v", err)
	}
	if notified {
		t.Fatal("failed write must not publish")
	}
}
