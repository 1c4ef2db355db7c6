package models

import "time"

// DestinationBooking is one confirmed tour/package booking. ID identifies the
// catalog destination; BookingID identifies this specific act of booking and
// is minted fresh on every booking, including re-booking after a cancel.
// Bookings are never edited in place: cancel removes the record.
type DestinationBooking struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"bookingId"`
	Label       string    `json:"label"`
	Img         string    `json:"img,omitempty"`
	Price       string    `json:"price,omitempty"`
	BookingDate time.Time `json:"bookingDate"`
}

// TripType is the flight itinerary kind selected on the search form.
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
	TripMultiCity TripType = "multi-city"
)

func (t TripType) Valid() bool {
	switch t {
	case TripOneWay, TripRoundTrip, TripMultiCity:
		return true
	}
	return false
}

// CabinClass is the seating class selected on the search form.
type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinPremium  CabinClass = "premium"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

func (c CabinClass) Valid() bool {
	switch c {
	case CabinEconomy, CabinPremium, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

// FlightBooking is one flight search+book action. FromAirport and ToAirport
// hold display-resolved airport names baked in at booking time; they are
// never re-resolved against the catalog afterwards.
type FlightBooking struct {
	BookingID     string     `json:"bookingId"`
	FromAirport   string     `json:"fromAirport"`
	ToAirport     string     `json:"toAirport"`
	TripType      TripType   `json:"tripType"`
	CabinClass    CabinClass `json:"cabinClass"`
	DepartureDate string     `json:"departureDate"`
	ReturnDate    string     `json:"returnDate,omitempty"` // set only for round trips
	Passengers    int        `json:"passengers"`
	Price         string     `json:"price,omitempty"`
}

// FormBooking is the hotel-booking form submission. At most one outstanding
// FormBooking exists per profile: a new submission replaces the previous one
// and cancel empties the record entirely.
type FormBooking struct {
	Destination string    `json:"destination"`
	Location    string    `json:"location"`
	CheckIn     string    `json:"checkIn"`
	CheckOut    string    `json:"checkOut"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	RoomType    string    `json:"roomType"`
	Price       string    `json:"price,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}
