package handlers

import (
	"errors"
	"net/http"

	"cleanquote/models"
	"cleanquote/services/property"
	"cleanquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const missingAddressFields = "Missing required fields: street, city, state, zip"

// PropertyHandler serves the square footage lookups of the quote form.
type PropertyHandler struct {
	Service property.PropertyService
}

func NewPropertyHandler(svc property.PropertyService) *PropertyHandler {
	return &PropertyHandler{Service: svc}
}

// PropertyLookupHandler answers from the property records API.
func (h *PropertyHandler) PropertyLookupHandler(c *gin.Context) {
	logger := getLogger(c)

	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.JSONError(c, http.StatusBadRequest, missingAddressFields, err.Error())
		return
	}

	details, err := h.Service.LookupProperty(c.Request.Context(), addr)
	if err != nil {
		if errors.Is(err, property.ErrPropertyNotFound) || errors.Is(err, property.ErrSquareFootageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found."})
			return
		}
		if errors.Is(err, property.ErrLookupTimeout) {
			utils.JSONError(c, http.StatusRequestTimeout, "Property lookup timed out", err.Error())
			return
		}
		logger.Error("Property lookup failed", zap.String("address", addr.FullAddress()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred."})
		return
	}

	c.JSON(http.StatusOK, details)
}

// RedfinHandler reads the square footage off the public listing page.
func (h *PropertyHandler) RedfinHandler(c *gin.Context) {
	logger := getLogger(c)

	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.JSONError(c, http.StatusBadRequest, missingAddressFields, err.Error())
		return
	}

	fullAddress := addr.FullAddress()
	logger.Info("Searching for property", zap.String("address", fullAddress))

	sqft, err := h.Service.ScrapeSquareFootage(c.Request.Context(), addr)
	switch {
	case err == nil:
		logger.Info("Found square footage", zap.Int("squareFootage", sqft))
		c.JSON(http.StatusOK, gin.H{"squareFootage": sqft})
	case errors.Is(err, property.ErrSquareFootageNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Square footage not found on property page",
			"address": fullAddress,
		})
	case errors.Is(err, property.ErrLookupTimeout):
		utils.JSONError(c, http.StatusRequestTimeout, "Request timeout - listing site took too long to respond", err.Error())
	case errors.Is(err, property.ErrPropertyNotFound):
		utils.JSONError(c, http.StatusNotFound, "Property not found or page structure changed", err.Error())
	default:
		logger.Error("Error scraping listing page", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error while scraping listing page", err.Error())
	}
}
