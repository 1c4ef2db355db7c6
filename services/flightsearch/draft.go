// Package flightsearch persists the flight search form draft so the form
// survives page reloads. The draft is component-local state: it has no
// synchronization contract and no change notification is published for it.
package flightsearch

import (
	"context"

	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/models"
)

// Draft mirrors the flight search form fields.
type Draft struct {
	TripType      models.TripType   `json:"tripType"`
	CabinClass    models.CabinClass `json:"cabinClass"`
	FromAirport   string            `json:"fromAirport"`
	ToAirport     string            `json:"toAirport"`
	DepartureDate string            `json:"departureDate"`
	ReturnDate    string            `json:"returnDate"`
	Passengers    int               `json:"passengers"`
}

// DefaultDraft returns the form's initial values.
func DefaultDraft() Draft {
	return Draft{
		TripType:    models.TripRoundTrip,
		CabinClass:  models.CabinEconomy,
		FromAirport: "DEL",
		ToAirport:   "BOM",
		Passengers:  1,
	}
}

// Swapped returns the draft with origin and destination exchanged.
func (d Draft) Swapped() Draft {
	d.FromAirport, d.ToAirport = d.ToAirport, d.FromAirport
	return d
}

// DraftStore reads and writes the search form draft.
type DraftStore struct {
	Store store.Store
}

// Load returns the saved draft, or the defaults when nothing usable is
// stored.
func (ds *DraftStore) Load(ctx context.Context) Draft {
	draft, ok := store.LoadOne[Draft](ctx, ds.Store, store.KeyFlightSearchDraft)
	if !ok {
		return DefaultDraft()
	}
	return draft
}

// Save persists the draft. No topic is published: other components never
// observe the search form's in-progress state.
func (ds *DraftStore) Save(ctx context.Context, draft Draft) error {
	return store.SaveOne(ctx, ds.Store, store.KeyFlightSearchDraft, draft)
}

// Clear resets the form to defaults on next load.
func (ds *DraftStore) Clear(ctx context.Context) error {
	return store.Clear(ctx, ds.Store, store.KeyFlightSearchDraft)
}
