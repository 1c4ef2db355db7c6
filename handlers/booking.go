package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/models"
	"github.com/kamesh952/KalmHolidays/services/booking"
)

func isValidationError(err error) bool {
	for _, target := range []error{
		booking.ErrUnknownAirport,
		booking.ErrInvalidTripType,
		booking.ErrInvalidCabinClass,
		booking.ErrInvalidPassengers,
		booking.ErrMissingDeparture,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// BookingHandler exposes the destination, car, flight and hotel booking
// operations over HTTP. Every mutating endpoint responds with a user-visible
// acknowledgment: booked, already booked, cancelled or nothing-to-cancel.
type BookingHandler struct {
	service booking.Service
	logger  *zap.Logger
}

func NewBookingHandler(service booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// ListHandler returns every booking collection in one response, the way the
// bookings panel displays them.
func (h *BookingHandler) ListHandler(c *gin.Context) {
	ctx := c.Request.Context()

	destinations := h.service.Destinations(ctx)
	if destinations == nil {
		destinations = []models.DestinationBooking{}
	}
	flights := h.service.Flights(ctx)
	if flights == nil {
		flights = []models.FlightBooking{}
	}

	resp := gin.H{
		"destinations": destinations,
		"flights":      flights,
	}
	if hotel, ok := h.service.HotelBooking(ctx); ok {
		resp["hotel"] = hotel
	}
	c.JSON(http.StatusOK, resp)
}

// BookDestinationHandler books a destination from the gallery or wishlist.
func (h *BookingHandler) BookDestinationHandler(c *gin.Context) {
	var dest models.Destination
	if err := c.ShouldBindJSON(&dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booked, outcome, err := h.service.BookDestination(c.Request.Context(), dest)
	h.respondBooked(c, booked, outcome, err, "Destination booked successfully!", "This destination is already booked!")
}

// BookCarHandler books a rental car.
func (h *BookingHandler) BookCarHandler(c *gin.Context) {
	var car models.CarRental
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booked, outcome, err := h.service.BookCar(c.Request.Context(), car)
	h.respondBooked(c, booked, outcome, err, "Car booked successfully!", "This car is already booked!")
}

// CancelBookingHandler cancels a destination or car booking by booking
// reference, falling back to the catalog id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	ref := c.Param("ref")

	cancelled, err := h.service.CancelBooking(c.Request.Context(), ref)
	h.respondCancelled(c, cancelled, err)
}

// BookFlightHandler books a flight from the search form.
func (h *BookingHandler) BookFlightHandler(c *gin.Context) {
	var in booking.FlightInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booked, outcome, err := h.service.BookFlight(c.Request.Context(), in)
	if err != nil {
		switch {
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("flight booking failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save booking"})
		}
		return
	}
	if outcome == booking.OutcomeAlreadyBooked {
		c.JSON(http.StatusOK, gin.H{"outcome": outcome, "message": "This flight is already booked!"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"outcome": outcome,
		"message": "Flight booked successfully!",
		"booking": booked,
	})
}

// CancelFlightHandler cancels a flight booking by booking reference.
func (h *BookingHandler) CancelFlightHandler(c *gin.Context) {
	cancelled, err := h.service.CancelFlight(c.Request.Context(), c.Param("id"))
	h.respondCancelled(c, cancelled, err)
}

// HotelBookingHandler returns the outstanding hotel form booking, if any.
func (h *BookingHandler) HotelBookingHandler(c *gin.Context) {
	hotel, ok := h.service.HotelBooking(c.Request.Context())
	if !ok {
		c.JSON(http.StatusOK, gin.H{"booking": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": hotel})
}

// SubmitHotelBookingHandler replaces the outstanding hotel form booking.
func (h *BookingHandler) SubmitHotelBookingHandler(c *gin.Context) {
	var form models.FormBooking
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.service.SubmitHotelBooking(c.Request.Context(), form)
	if err != nil {
		h.logger.Error("hotel booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save booking"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Hotel booked successfully!",
		"booking": saved,
	})
}

// ClearHotelBookingHandler empties the hotel form booking.
func (h *BookingHandler) ClearHotelBookingHandler(c *gin.Context) {
	if err := h.service.ClearHotelBooking(c.Request.Context()); err != nil {
		h.logger.Error("hotel booking clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully!"})
}

func (h *BookingHandler) respondBooked(c *gin.Context, booked *models.DestinationBooking, outcome booking.BookOutcome, err error, okMsg, dupMsg string) {
	if err != nil {
		if errors.Is(err, booking.ErrMissingCatalogID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save booking"})
		return
	}
	if outcome == booking.OutcomeAlreadyBooked {
		c.JSON(http.StatusOK, gin.H{"outcome": outcome, "message": dupMsg})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"outcome": outcome, "message": okMsg, "booking": booked})
}

func (h *BookingHandler) respondCancelled(c *gin.Context, cancelled bool, err error) {
	if err != nil {
		h.logger.Error("cancel failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	if !cancelled {
		c.JSON(http.StatusOK, gin.H{"cancelled": false, "message": "No such booking to cancel"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true, "message": "Booking cancelled successfully!"})
}
