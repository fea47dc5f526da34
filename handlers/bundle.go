// File: cleanquote/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	JWTSecret string

	// Health
	HealthHandler gin.HandlerFunc

	// Property endpoints
	PropertyLookupHandler gin.HandlerFunc
	RedfinHandler         gin.HandlerFunc

	// Calendar endpoints
	AvailabilityHandler gin.HandlerFunc
	BookHandler         gin.HandlerFunc

	// Checkout endpoints
	CreateCheckoutHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
