package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kamesh952/KalmHolidays/config"
	"github.com/kamesh952/KalmHolidays/database"
	"github.com/kamesh952/KalmHolidays/database/store"
	"github.com/kamesh952/KalmHolidays/handlers"
	"github.com/kamesh952/KalmHolidays/middleware"
	"github.com/kamesh952/KalmHolidays/routes"
	"github.com/kamesh952/KalmHolidays/services/booking"
	"github.com/kamesh952/KalmHolidays/services/catalog"
	"github.com/kamesh952/KalmHolidays/services/events"
	"github.com/kamesh952/KalmHolidays/services/flightsearch"
	"github.com/kamesh952/KalmHolidays/services/notifier"
	"github.com/kamesh952/KalmHolidays/services/wishlist"
	"github.com/kamesh952/KalmHolidays/utils"
)

// buildStore selects the persistence backend from config. The returned
// cleanup releases any backend client.
func buildStore(logger *zap.Logger) (store.Store, func()) {
	backend := config.AppConfig.StoreBackend
	switch backend {
	case "memory":
		return store.NewMemStore(), func() {}
	case "redis":
		client, err := database.NewRedisClient()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		return store.NewRedisStore(client), func() { client.Close() }
	case "mongo":
		db, err := database.NewMongoDatabase(context.Background())
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		return store.NewMongoStore(db), func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			db.Client().Disconnect(ctx)
		}
	default:
		fs, err := store.NewFileStore(config.AppConfig.StoreDir)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		return fs, func() {}
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	bookingStore, cleanup := buildStore(logger)
	defer cleanup()

	if p, ok := bookingStore.(utils.Pinger); ok {
		utils.StartHealthMonitor(config.AppConfig.StoreBackend, p)
	}

	// Core: the shared store plus the change-notification bus, constructed
	// once and injected everywhere.
	bus := events.NewBus(logger)
	cat := catalog.NewStaticCatalog()

	wishlistService := &wishlist.DefaultService{
		Store:  bookingStore,
		Bus:    bus,
		Logger: logger,
	}
	bookingService := &booking.DefaultService{
		Store:   bookingStore,
		Bus:     bus,
		Catalog: cat,
		IDs:     utils.UUIDGenerator{},
		Logger:  logger,
	}
	draftStore := &flightsearch.DraftStore{Store: bookingStore}

	hub := notifier.NewHub(bus, logger)
	defer hub.Close()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Wishlist:     handlers.NewWishlistHandler(wishlistService, logger),
		Booking:      handlers.NewBookingHandler(bookingService, logger),
		Catalog:      handlers.NewCatalogHandler(cat),
		FlightSearch: handlers.NewFlightSearchHandler(draftStore, logger),
		Events:       handlers.NewEventsHandler(hub, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
