// File: cleanquote/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanquote/config"
	"cleanquote/cron"
	"cleanquote/database"
	calendarRepo "cleanquote/database/repository/calendar"
	"cleanquote/handlers"
	"cleanquote/middleware"
	"cleanquote/routes"
	"cleanquote/services/booking"
	"cleanquote/services/payment"
	"cleanquote/services/property"
	"cleanquote/services/tasks"
	"cleanquote/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	policy, err := cfg.CalendarPolicy()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid calendar configuration: %v", err)
	}

	rootCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	healthChecks := map[string]utils.HealthCheck{}

	// Calendar store: MongoDB when configured, in-memory otherwise.
	var calRepo calendarRepo.CalendarRepository
	if cfg.DatabaseURL != "" {
		database.InitDB()
		calRepo = calendarRepo.NewMongoCalendarRepo(cfg.DatabaseName)
		if err := calendarRepo.EnsureIndexes(calRepo); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		healthChecks["mongo"] = func(ctx context.Context) error {
			return database.MongoClient.Ping(ctx, nil)
		}
	} else {
		logger.Warn("DATABASE_URL not set; bookings are kept in memory only")
		calRepo = calendarRepo.NewMemoryCalendarRepo()
	}

	// Redis backs the property cache and the reminder queue.
	var (
		propertyCache  property.Cache
		reminders      booking.ReminderScheduler
		queueClient    *asynq.Client
		queueInspector *asynq.Inspector
		worker         *asynq.Server
	)
	if cfg.RedisAddr != "" {
		cacheClient := utils.GetCacheClient()
		propertyCache = property.NewRedisCache(cacheClient, cfg.PropertyCacheTTL())
		healthChecks["redis"] = func(ctx context.Context) error {
			return cacheClient.Ping(ctx).Err()
		}

		queueClient = asynq.NewClient(utils.QueueRedisOpt())
		queueInspector = asynq.NewInspector(utils.QueueRedisOpt())
		reminders = tasks.NewReminderScheduler(queueClient, queueInspector, time.Duration(cfg.ReminderLeadHours)*time.Hour)
		worker = cron.InitReminderWorker(utils.QueueRedisOpt(), calRepo, cron.LogNotifier{Logger: logger}, logger)
	} else {
		logger.Warn("REDIS_ADDR not set; property cache and booking reminders are disabled")
	}

	// services.
	httpClient := &http.Client{Timeout: cfg.ScraperTimeout()}
	propertyService := property.NewService(
		property.NewRentCastClient(httpClient, cfg.RentCastBaseURL, cfg.RentCastAPIKey),
		property.NewPageScraper(httpClient, cfg.ScraperSearchURL, cfg.ScraperUserAgent, cfg.ScraperTimeout()),
		propertyCache,
		logger,
	)

	bookingService := booking.NewBookingService(calRepo, policy, reminders, logger)

	var checkoutProvider payment.CheckoutProvider = payment.MockCheckout{}
	if cfg.StripeKey != "" {
		checkoutProvider = payment.NewStripeCheckout(cfg.StripeKey)
	} else {
		logger.Warn("STRIPE_KEY not set; using mock checkout sessions")
	}
	checkoutService := payment.NewCheckoutService(checkoutProvider, cfg.CheckoutCurrency, logger)

	// background jobs.
	maintenance, err := cron.StartMaintenance(cron.NewRetentionJob(calRepo, cfg.BookingRetentionDays, logger), policy.Loc())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to schedule maintenance: %v", err)
	}
	utils.StartHealthMonitor(rootCtx, 30*time.Second, healthChecks)

	// handlers.
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	calendarHandler := handlers.NewCalendarHandler(bookingService, policy.Loc())
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg.PublicBaseURL)
	adminHandler := handlers.NewAdminHandler(bookingService, policy.Loc())

	handlerBundle := &handlers.HandlerBundle{
		JWTSecret:     cfg.JWTSecret,
		HealthHandler: handlers.HealthHandler,

		PropertyLookupHandler: propertyHandler.PropertyLookupHandler,
		RedfinHandler:         propertyHandler.RedfinHandler,

		AvailabilityHandler: calendarHandler.AvailabilityHandler,
		BookHandler:         calendarHandler.BookHandler,

		CreateCheckoutHandler: checkoutHandler.CreateCheckoutHandler,

		AdminHandler: adminHandler,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
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
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	stopBackground()
	if maintenance != nil {
		<-maintenance.Stop().Done()
	}
	if worker != nil {
		worker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if queueInspector != nil {
		_ = queueInspector.Close()
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close database", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
