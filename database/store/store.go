// Package store is the durable per-profile persistence surface for the
// booking collections. Every collection is addressed by a well-known key and
// written as one JSON document; writers always replace the whole collection,
// never merge into it.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// Well-known collection keys. The store owns the durable copy of each;
// any in-memory copy held by a component is a read cache that is only valid
// until the next change notification.
const (
	KeyWishlist            = "wishlistDestinations"
	KeyDestinationBookings = "bookedDestinations"
	KeyFormBooking         = "bookingResponse"
	KeyFlightBookings      = "flightBookings"
	KeyFlightSearchDraft   = "flightSearchDraft"
)

// ErrNotFound reports that a key has no stored value.
var ErrNotFound = errors.New("store: key not found")

// Store is a synchronous key/value persistence surface. Implementations must
// guarantee that Set followed by Get returns the exact bytes written, with no
// intervening writer.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Load returns the persisted collection under key. An absent key or a payload
// that fails to parse yields an empty collection: corrupt state is treated as
// absent state, and the read path never surfaces an error to the caller.
func Load[T any](ctx context.Context, s Store, key string) []T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			zap.L().Warn("store: read failed, treating collection as empty",
				zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		zap.L().Warn("store: discarding malformed collection",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// Save serializes items and replaces the whole collection under key. Callers
// must pass the full next state; partial writes do not exist. Failure is
// reported, never dropped, and the previously stored state stays untouched.
func Save[T any](ctx context.Context, s Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}

// LoadOne reads a singleton document. Absent or malformed payloads report
// ok=false with a zero value, mirroring the collection read policy.
func LoadOne[T any](ctx context.Context, s Store, key string) (T, bool) {
	var doc T
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			zap.L().Warn("store: read failed, treating document as absent",
				zap.String("key", key), zap.Error(err))
		}
		return doc, false
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		zap.L().Warn("store: discarding malformed document",
			zap.String("key", key), zap.Error(err))
		var zero T
		return zero, false
	}
	return doc, true
}

// SaveOne replaces a singleton document under key.
func SaveOne[T any](ctx context.Context, s Store, key string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}

// Clear removes the collection entirely. Clearing an absent key is a no-op.
func Clear(ctx context.Context, s Store, key string) error {
	if err := s.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
