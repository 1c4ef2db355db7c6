package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/events"
	"github.com/kamesh952/KalmHolidays/utils"
)

// ErrMissingCatalogID rejects book requests without a catalog identity.
var ErrMissingCatalogID = errors.New("booking: catalog id is required")

func (s *DefaultService) Destinations(ctx context.Context) []models.DestinationBooking {
	return store.Load[models.DestinationBooking](ctx, s.Store, store.KeyDestinationBookings)
}

func (s *DefaultService) BookDestination(ctx context.Context, dest models.Destination) (*models.DestinationBooking, BookOutcome, error) {
	if dest.ID == "" {
		return nil, "", ErrMissingCatalogID
	}
	return s.appendDestinationBooking(ctx, models.DestinationBooking{
		ID:    dest.ID,
		Label: dest.Label,
		Img:   dest.Img,
		Price: dest.Price,
	})
}

func (s *DefaultService) BookCar(ctx context.Context, car models.CarRental) (*models.DestinationBooking, BookOutcome, error) {
	if car.ID == "" {
		return nil, "", ErrMissingCatalogID
	}
	label := car.Location
	if car.CarType != "" {
		label = car.Location + " - " + car.CarType
	}
	return s.appendDestinationBooking(ctx, models.DestinationBooking{
		ID:    car.ID,
		Label: label,
		Img:   car.Image,
		Price: car.Price,
	})
}

// appendDestinationBooking applies the already-booked guard against the
// freshly loaded collection, not against any caller-side cache: "is this
// already booked" is always re-derived from the store.
func (s *DefaultService) appendDestinationBooking(ctx context.Context, booking models.DestinationBooking) (*models.DestinationBooking, BookOutcome, error) {
	current := s.Destinations(ctx)
	for _, item := range current {
		if item.ID == booking.ID {
			return nil, OutcomeAlreadyBooked, nil
		}
	}

	booking.BookingID = s.IDs.BookingID(utils.BookingIDPrefix)
	booking.BookingDate = time.Now().UTC()

	next := append(current, booking)
	if err := store.Save(ctx, s.Store, store.KeyDestinationBookings, next); err != nil {
		return nil, "", err
	}
	s.Bus.Publish(events.TopicBookingsUpdated)
	s.Logger.Info("booking: destination booked",
		zap.String("id", booking.ID), zap.String("bookingId", booking.BookingID))
	return &booking, OutcomeBooked, nil
}

func (s *DefaultService) CancelBooking(ctx context.Context, ref string) (bool, error) {
	current := s.Destinations(ctx)

	next := make([]models.DestinationBooking, 0, len(current))
	cancelled := false
	for _, item := range current {
		if item.BookingID == ref || item.ID == ref {
			cancelled = true
			continue
		}
		next = append(next, item)
	}
	if !cancelled {
		return false, nil
	}

	if err := store.Save(ctx, s.Store, store.KeyDestinationBookings, next); err != nil {
		return false, err
	}
	s.Bus.Publish(events.TopicBookingsUpdated)
	s.Logger.Info("booking: destination cancelled", zap.String("ref", ref))
	return true, nil
}
