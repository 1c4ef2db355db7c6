package handlers

// HandlerBundle groups all route handlers for registration.
type HandlerBundle struct {
	Wishlist     *WishlistHandler
	Booking      *BookingHandler
	Catalog      *CatalogHandler
	FlightSearch *FlightSearchHandler
	Events       *EventsHandler
}
