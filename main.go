// File: medistay/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"medistay/catalog"
	"medistay/config"
	"medistay/cron"
	"medistay/database"
	bookingRepo "medistay/database/repository/booking"
	catalogRepo "medistay/database/repository/catalog"
	"medistay/handlers"
	"medistay/middleware"
	"medistay/routes"
	"medistay/services/booking"
	"medistay/services/notification"
	"medistay/services/stats"
	syncSvc "medistay/services/sync"
	"medistay/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.SetupCORS(router)

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	packages := catalogRepo.NewMongoPackageRepo()

	// Seed and load the price catalog.
	priceCatalog := loadCatalog(packages, logger)

	// notifications: queued dispatch with a background email worker.
	mailer := notification.NewSendGridMailer()
	queue := cron.NewQueueClient()
	cron.InitNotificationWorker(mailer)
	notifier := &notification.DefaultNotifier{
		Mailer:     mailer,
		Queue:      queue,
		AdminEmail: config.AppConfig.AdminEmail,
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:        bookings,
		Catalog:     priceCatalog,
		Notifier:    notifier,
		DepositRate: config.AppConfig.DepositRate,
	}
	syncService := &syncSvc.DefaultSyncService{
		Repo:                bookings,
		Catalog:             priceCatalog,
		Notifier:            notifier,
		Cache:               utils.GetCacheClient(),
		DepositRate:         config.AppConfig.DepositRate,
		StrictPackageLookup: config.AppConfig.SyncStrictPackageLookup,
	}
	statsReporter := &stats.DefaultReporter{Repo: bookings}

	// handlers and routes.
	h := &routes.Handlers{
		Booking:  handlers.NewBookingHandler(bookingService),
		Sync:     handlers.NewSyncHandler(syncService),
		Stats:    handlers.NewStatsHandler(statsReporter),
		Packages: handlers.NewPackageHandler(priceCatalog, utils.GetCacheClient()),
	}
	routes.RegisterBookingRoutes(router, h)
	routes.RegisterPackageRoutes(router, h)
	routes.RegisterHealthRoutes(router)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

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

// loadCatalog seeds the packages collection on first boot and builds the
// immutable price catalog from it, falling back to the built-in tables when
// the collection cannot be read.
func loadCatalog(repo catalogRepo.PackageRepository, logger *zap.Logger) catalog.Catalog {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	def := catalog.Default()
	if n, err := repo.SeedIfEmpty(ctx, def.Packages()); err != nil {
		logger.Sugar().Warnf("main: could not seed packages, using built-in catalog: %v", err)
		return def
	} else if n > 0 {
		logger.Sugar().Infof("main: seeded %d packages", n)
	}

	stored, err := repo.GetAll(ctx)
	if err != nil || len(stored) == 0 {
		return def
	}
	return catalog.New(stored, catalog.DefaultAddOnPrices(), catalog.DefaultMedicalPrices())
}
