// File: tripatlas/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripatlas/config"
	"tripatlas/cron"
	"tripatlas/database"
	catalogRepo "tripatlas/database/repository/catalog"
	"tripatlas/handlers"
	"tripatlas/middleware"
	"tripatlas/routes"
	"tripatlas/services/booking"
	"tripatlas/services/cart"
	"tripatlas/services/planner"
	"tripatlas/services/tasks"
	"tripatlas/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Catalog repository: loads once at startup, read-only afterwards.
	catRepo, err := catalogRepo.NewMongoCatalogRepo(database.MongoClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load plan catalog: %v", err)
	}

	rules := config.DefaultEngineRules()

	// Planner engine.
	recommendationService := &planner.DefaultRecommendationService{
		Catalog:       catRepo,
		Rules:         rules,
		Prices:        planner.NewPriceGenerator(rules),
		Logger:        logger,
		ThinkingDelay: time.Duration(config.AppConfig.ThinkingDelayMs) * time.Millisecond,
	}

	// Booking session flow.
	ctx := context.Background()
	accoms, err := catRepo.AccommodationTypes(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load accommodation types: %v", err)
	}
	addOns, err := catRepo.AddOns(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load add-ons: %v", err)
	}
	calculator := booking.NewCalculator(accoms, addOns, rules.ExtraRoomFee, rules.MaxTravelers, rules.MaxRooms)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	bookingService := &booking.DefaultSessionService{
		Catalog:    catRepo,
		Store:      booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Calculator: calculator,
		Payment:    booking.NewStripePaymentHandler(logger, config.AppConfig.StripeKey != ""),
		Archiver:   tasks.NewClientArchiver(asynqClient),
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMin) * time.Minute,
		Logger:     logger,
	}

	// Background worker persisting confirmed bookings.
	cron.InitArchiveWorker(database.MongoClient)

	// Handlers.
	plannerHandler := handlers.NewPlannerHandler(recommendationService, logger)
	catalogHandler := handlers.NewCatalogHandler(catRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	cartHandler := handlers.NewCartHandler(cart.NewCalculator())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GenerateRecommendations: plannerHandler.GenerateRecommendations,
		GetCities:               catalogHandler.GetCities,

		GetPlans:    catalogHandler.GetPlans,
		GetPlanByID: catalogHandler.GetPlanByID,

		GetBookingOptions: catalogHandler.GetBookingOptions,
		InitiateSession:   bookingHandler.InitiateSession,
		UpdateSession:     bookingHandler.UpdateSession,
		ConfirmBooking:    bookingHandler.ConfirmBooking,
		CancelSession:     bookingHandler.CancelSession,

		CartCheckout: cartHandler.Checkout,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
