package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medistay/handlers"
	"medistay/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Booking  *handlers.BookingHandler
	Sync     *handlers.SyncHandler
	Stats    *handlers.StatsHandler
	Packages *handlers.PackageHandler
}

// SetupCORS configures cross-origin access for the browser frontend.
func SetupCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterBookingRoutes registers the booking, sync and stats endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/bookings")
	{
		// Public direct submission path.
		api.POST("", h.Booking.CreateBooking)

		// Administrative operations.
		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.GET("", h.Booking.ListBookings)
		admin.GET("/stats", h.Stats.BookingStats)
		admin.POST("/sync", h.Sync.SyncBookings)
		admin.GET("/sync/last", h.Sync.LastSyncReport)
		admin.POST("/cleanup-duplicates", h.Booking.CleanupDuplicates)
		admin.GET("/:id", h.Booking.GetBooking)
		admin.PATCH("/:id/status", h.Booking.UpdateStatus)
		admin.DELETE("/:id", h.Booking.DeleteBooking)
	}
}

// RegisterPackageRoutes registers the public catalog endpoints.
func RegisterPackageRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/packages")
	{
		api.GET("", h.Packages.ListPackages)
	}
}

// RegisterHealthRoutes registers the health endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}
