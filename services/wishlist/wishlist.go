// Package wishlist implements the saved-for-later collection with toggle
// semantics: adding an item that is already present removes it instead.
package wishlist

import (
	"context"

	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/events"
)

// ToggleOutcome is the user-visible result of a toggle.
type ToggleOutcome string

const (
	OutcomeAdded   ToggleOutcome = "added"
	OutcomeRemoved ToggleOutcome = "removed"
)

// Service defines wishlist operations.
type Service interface {
	// List returns the persisted wishlist.
	List(ctx context.Context) []models.WishlistEntry
	// Toggle adds entry when its catalog id is absent and removes it when
	// present. The persisted collection never holds two entries with the
	// same id.
	Toggle(ctx context.Context, entry models.WishlistEntry) (ToggleOutcome, error)
	// Remove drops the entry with the given catalog id. Removing an absent
	// id is a benign no-op reported as removed=false.
	Remove(ctx context.Context, id string) (bool, error)
}

// DefaultService implements Service against the shared store and bus.
type DefaultService struct {
	Store  store.Store
	Bus    *events.Bus
	Logger *zap.Logger
}

func (s *DefaultService) List(ctx context.Context) []models.WishlistEntry {
	return store.Load[models.WishlistEntry](ctx, s.Store, store.KeyWishlist)
}

func (s *DefaultService) Toggle(ctx context.Context, entry models.WishlistEntry) (ToggleOutcome, error) {
	current := s.List(ctx)

	next := make([]models.WishlistEntry, 0, len(current)+1)
	outcome := OutcomeAdded
	for _, item := range current {
		if item.ID == entry.ID {
			outcome = OutcomeRemoved
			continue
		}
		next = append(next, item)
	}
	if outcome == OutcomeAdded {
		next = append(next, entry)
	}

	if err := store.Save(ctx, s.Store, store.KeyWishlist, next); err != nil {
		return "", err
	}
	s.Bus.Publish(events.TopicWishlistUpdated)
	s.Logger.Debug("wishlist: toggled",
		zap.String("id", entry.ID), zap.String("outcome", string(outcome)))
	return outcome, nil
}

func (s *DefaultService) Remove(ctx context.Context, id string) (bool, error) {
	current := s.List(ctx)

	next := make([]models.WishlistEntry, 0, len(current))
	removed := false
	for _, item := range current {
		if item.ID == id {
			removed = true
			continue
		}
		next = append(next, item)
	}
	if !removed {
		return false, nil
	}

	if err := store.Save(ctx, s.Store, store.KeyWishlist, next); err != nil {
		return false, err
	}
	s.Bus.Publish(events.TopicWishlistUpdated)
	s.Logger.Debug("wishlist: removed", zap.String("id", id))
	return true, nil
}
