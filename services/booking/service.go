// Package booking implements the three booking collections: destination/car
// bookings (append-only with an already-booked guard), flight bookings
// (append-only) and the hotel form booking (a replace-on-write singleton).
//
// Every mutation follows the same contract: load the current collection,
// compute the full next state, persist it as one unit, then publish the
// bookings topic so every mounted view reloads. A caller's in-memory copy is
// never authoritative once the publish returns.
package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/catalog"
	"github.com/kamesh952/KalmHolidays/services/events"
	"github.com/kamesh952/KalmHolidays/utils"
)

// BookOutcome is the user-visible result of a book request.
type BookOutcome string

const (
	OutcomeBooked BookOutcome = "booked"
	// OutcomeAlreadyBooked reports the benign rejection of a duplicate book
	// request. The collection is left unchanged; this is not an error.
	OutcomeAlreadyBooked BookOutcome = "alreadyBooked"
)

// Service defines all booking operations.
type Service interface {
	Destinations(ctx context.Context) []models.DestinationBooking
	// BookDestination appends a booking for dest unless its catalog id is
	// already booked, in which case it reports OutcomeAlreadyBooked and
	// leaves the collection unchanged.
	BookDestination(ctx context.Context, dest models.Destination) (*models.DestinationBooking, BookOutcome, error)
	// BookCar books a rental car into the destination-bookings collection.
	BookCar(ctx context.Context, car models.CarRental) (*models.DestinationBooking, BookOutcome, error)
	// CancelBooking removes the booking whose bookingId matches ref, falling
	// back to the catalog id. Cancelling an unknown ref is a benign no-op.
	CancelBooking(ctx context.Context, ref string) (bool, error)

	Flights(ctx context.Context) []models.FlightBooking
	BookFlight(ctx context.Context, in FlightInput) (*models.FlightBooking, BookOutcome, error)
	CancelFlight(ctx context.Context, bookingID string) (bool, error)

	HotelBooking(ctx context.Context) (models.FormBooking, bool)
	// SubmitHotelBooking unconditionally replaces the outstanding hotel form
	// booking; there is no already-booked guard for the singleton.
	SubmitHotelBooking(ctx context.Context, form models.FormBooking) (models.FormBooking, error)
	ClearHotelBooking(ctx context.Context) error
}

// DefaultService implements Service against the shared store and bus.
type DefaultService struct {
	Store   store.Store
	Bus     *events.Bus
	Catalog catalog.Service
	IDs     utils.IDGenerator
	Logger  *zap.Logger
}
