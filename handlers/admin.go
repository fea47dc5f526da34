package handlers

import (
	"errors"
	"net/http"
	"time"

	calendarRepo "cleanquote/database/repository/calendar"
	"cleanquote/services/booking"
	"cleanquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultAdminWindow = 30 * 24 * time.Hour

// AdminHandler encapsulates elevated admin-level operations on the calendar.
type AdminHandler struct {
	Bookings booking.BookingService
	Location *time.Location
	Now      func() time.Time
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bs booking.BookingService, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{Bookings: bs, Location: loc, Now: time.Now}
}

// ListBookingsHandler returns bookings overlapping [from, to). The window
// defaults to the next 30 days.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	from := ah.Now()
	if raw := c.Query("from"); raw != "" {
		t, err := parseDate(raw, ah.Location)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid from parameter", err.Error())
			return
		}
		from = t
	}
	to := from.Add(defaultAdminWindow)
	if raw := c.Query("to"); raw != "" {
		t, err := parseDate(raw, ah.Location)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid to parameter", err.Error())
			return
		}
		to = t
	}
	if !to.After(from) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid window", "to must be after from")
		return
	}

	bookings, err := ah.Bookings.ListBookings(c.Request.Context(), from, to)
	if err != nil {
		getLogger(c).Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler removes a booking from the calendar.
func (ah *AdminHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := ah.Bookings.CancelBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, calendarRepo.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		getLogger(c).Error("Failed to cancel booking", zap.String("bookingID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "id": id})
}
