package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/events"
	"github.com/kamesh952/KalmHolidays/utils"
)

// FlightInput carries the search-form fields submitted to book a flight.
// Airports arrive as codes and are resolved to display names at booking time.
type FlightInput struct {
	FromAirport   string            `json:"fromAirport"`
	ToAirport     string            `json:"toAirport"`
	TripType      models.TripType   `json:"tripType"`
	CabinClass    models.CabinClass `json:"cabinClass"`
	DepartureDate string            `json:"departureDate"`
	ReturnDate    string            `json:"returnDate"`
	Passengers    int               `json:"passengers"`
	Price         string            `json:"price"`
}

var (
	ErrUnknownAirport    = errors.New("booking: unknown airport code")
	ErrInvalidTripType   = errors.New("booking: invalid trip type")
	ErrInvalidCabinClass = errors.New("booking: invalid cabin class")
	ErrInvalidPassengers = errors.New("booking: passengers must be at least 1")
	ErrMissingDeparture  = errors.New("booking: departure date is required")
)

func (in FlightInput) validate() error {
	if !in.TripType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTripType, in.TripType)
	}
	if !in.CabinClass.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCabinClass, in.CabinClass)
	}
	if in.Passengers < 1 {
		return ErrInvalidPassengers
	}
	if in.DepartureDate == "" {
		return ErrMissingDeparture
	}
	return nil
}

func (s *DefaultService) Flights(ctx context.Context) []models.FlightBooking {
	return store.Load[models.FlightBooking](ctx, s.Store, store.KeyFlightBookings)
}

func (s *DefaultService) BookFlight(ctx context.Context, in FlightInput) (*models.FlightBooking, BookOutcome, error) {
	if err := in.validate(); err != nil {
		return nil, "", err
	}

	from, ok := s.Catalog.Airport(in.FromAirport)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownAirport, in.FromAirport)
	}
	to, ok := s.Catalog.Airport(in.ToAirport)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownAirport, in.ToAirport)
	}

	booking := models.FlightBooking{
		FromAirport:   from.Name,
		ToAirport:     to.Name,
		TripType:      in.TripType,
		CabinClass:    in.CabinClass,
		DepartureDate: in.DepartureDate,
		Passengers:    in.Passengers,
		Price:         in.Price,
	}
	if in.TripType == models.TripRoundTrip {
		booking.ReturnDate = in.ReturnDate
	}

	// Guard against re-booking the identical itinerary without a cancel in
	// between; a fresh load decides, not any caller-side state.
	current := s.Flights(ctx)
	for _, item := range current {
		if item.FromAirport == booking.FromAirport &&
			item.ToAirport == booking.ToAirport &&
			item.DepartureDate == booking.DepartureDate &&
			item.TripType == booking.TripType &&
			item.CabinClass == booking.CabinClass {
			return nil, OutcomeAlreadyBooked, nil
		}
	}

	booking.BookingID = s.IDs.BookingID(utils.FlightIDPrefix)

	next := append(current, booking)
	if err := store.Save(ctx, s.Store, store.KeyFlightBookings, next); err != nil {
		return nil, "", err
	}
	s.Bus.Publish(events.TopicBookingsUpdated)
	s.Logger.Info("booking: flight booked",
		zap.String("bookingId", booking.BookingID),
		zap.String("from", booking.FromAirport),
		zap.String("to", booking.ToAirport))
	return &booking, OutcomeBooked, nil
}

func (s *DefaultService) CancelFlight(ctx context.Context, bookingID string) (bool, error) {
	current := s.Flights(ctx)

	next := make([]models.FlightBooking, 0, len(current))
	cancelled := false
	for _, item := range current {
		if item.BookingID == bookingID {
			cancelled = true
			continue
		}
		next = append(next, item)
	}
	if !cancelled {
		return false, nil
	}

	if err := store.Save(ctx, s.Store, store.KeyFlightBookings, next); err != nil {
		return false, err
	}
	s.Bus.Publish(events.TopicBookingsUpdated)
	s.Logger.Info("booking: flight cancelled", zap.String("bookingId", bookingID))
	return true, nil
}
