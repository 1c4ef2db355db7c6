package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kamesh952/KalmHolidays/handlers"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	registerCatalogRoutes(r, hb)
	registerWishlistRoutes(r, hb)
	registerBookingRoutes(r, hb)

	// Change-notification stream: one frame per published topic.
	r.GET("/api/events", hb.Events.StreamHandler)
}

func registerCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/destinations", hb.Catalog.DestinationsHandler)
		api.GET("/cars", hb.Catalog.CarsHandler)
		api.GET("/airports", hb.Catalog.AirportsHandler)
		api.GET("/hotel-locations", hb.Catalog.HotelLocationsHandler)
	}
}

func registerWishlistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wishlist")
	{
		api.GET("", hb.Wishlist.ListHandler)
		api.POST("/toggle", hb.Wishlist.ToggleHandler)
		api.DELETE("/:id", hb.Wishlist.RemoveHandler)
	}
}

func registerBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListHandler)

		api.POST("/destinations", hb.Booking.BookDestinationHandler)
		api.DELETE("/destinations/:ref", hb.Booking.CancelBookingHandler)

		api.POST("/cars", hb.Booking.BookCarHandler)

		api.POST("/flights", hb.Booking.BookFlightHandler)
		api.DELETE("/flights/:id", hb.Booking.CancelFlightHandler)

		api.GET("/hotel", hb.Booking.HotelBookingHandler)
		api.POST("/hotel", hb.Booking.SubmitHotelBookingHandler)
		api.DELETE("/hotel", hb.Booking.ClearHotelBookingHandler)
	}

	search := r.Group("/api/flight-search")
	{
		search.GET("/draft", hb.FlightSearch.GetDraftHandler)
		search.POST("/draft", hb.FlightSearch.SaveDraftHandler)
		search.DELETE("/draft", hb.FlightSearch.ClearDraftHandler)
	}
}
