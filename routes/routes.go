package routes

import (
	"time"

	"cleanquote/handlers"
	"cleanquote/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterPropertyRoutes registers the square footage lookups used by the quote form.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/property-lookup", hb.PropertyLookupHandler)
	r.POST("/redfin", hb.RedfinHandler)
}

// RegisterCalendarRoutes sets up the endpoints for the booking calendar.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	calendarGroup := r.Group("/api/calendar")
	{
		calendarGroup.GET("/availability", hb.AvailabilityHandler)
		calendarGroup.POST("/book", hb.BookHandler)
	}
}

// RegisterCheckoutRoutes sets up the deposit payment endpoint.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/stripe/create-checkout", hb.CreateCheckoutHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.JWTSecret))
		adminGroup.GET("/bookings", hb.AdminHandler.ListBookingsHandler)
		adminGroup.DELETE("/bookings/:id", hb.AdminHandler.CancelBookingHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
