package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cleanquote/models"
	"cleanquote/services/booking"
	"cleanquote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultAvailabilityDays = 7
	maxAvailabilityDays     = 60
	dateLayout              = "2006-01-02"
)

// CalendarHandler exposes availability and booking of cleaning jobs.
type CalendarHandler struct {
	Service  booking.BookingService
	Location *time.Location
	Now      func() time.Time
}

func NewCalendarHandler(svc booking.BookingService, loc *time.Location) *CalendarHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarHandler{Service: svc, Location: loc, Now: time.Now}
}

// AvailabilityHandler lists free hour-aligned start times per day.
func (h *CalendarHandler) AvailabilityHandler(c *gin.Context) {
	days := defaultAvailabilityDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxAvailabilityDays {
			utils.JSONError(c, http.StatusBadRequest, "Invalid days parameter", fmt.Sprintf("days must be between 1 and %d", maxAvailabilityDays))
			return
		}
		days = n
	}

	hours := 1.0
	if raw := c.Query("hours"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid hours parameter", "hours must be a positive number")
			return
		}
		hours = v
	}

	from := h.Now()
	if raw := c.Query("from"); raw != "" {
		t, err := parseDate(raw, h.Location)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid from parameter", err.Error())
			return
		}
		from = t
	}

	availability, err := h.Service.Availability(c.Request.Context(), from, days, hours)
	if errors.Is(err, booking.ErrInvalidDays) || errors.Is(err, booking.ErrInvalidDuration) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability query", err.Error())
		return
	}
	if err != nil {
		getLogger(c).Error("Failed to compute availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability."})
		return
	}

	out := make(map[string][]string, len(availability))
	for _, day := range availability {
		out[day.Date] = day.Starts
	}
	c.JSON(http.StatusOK, out)
}

// BookHandler books either an explicit startTime or the next free slot
// on or after preferredStartDate.
func (h *CalendarHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields for booking.", err.Error())
		return
	}

	req := models.BookingRequest{
		Name:           input.Name,
		Email:          input.Email,
		Address:        input.Address,
		EstimatedHours: input.EstimatedHours,
	}

	var (
		result *models.Booking
		err    error
	)
	if input.StartTime != "" {
		start, perr := time.Parse(time.RFC3339, input.StartTime)
		if perr != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid startTime", perr.Error())
			return
		}
		result, err = h.Service.BookAt(c.Request.Context(), req, start)
	} else {
		req.PreferredStartDate = h.Now()
		if input.PreferredStartDate != "" {
			preferred, perr := parseDate(input.PreferredStartDate, h.Location)
			if perr != nil {
				utils.JSONError(c, http.StatusBadRequest, "Invalid preferredStartDate", perr.Error())
				return
			}
			req.PreferredStartDate = preferred
		}
		result, err = h.Service.BookNextAvailable(c.Request.Context(), req)
	}

	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"error": "No available time slot could be found."})
		case errors.Is(err, booking.ErrSlotConflict):
			utils.JSONError(c, http.StatusConflict, "Requested time slot is already booked.", err.Error())
		case errors.Is(err, booking.ErrOutsideBusinessHours), errors.Is(err, booking.ErrInvalidDuration):
			utils.JSONError(c, http.StatusBadRequest, "Requested time slot is not bookable.", err.Error())
		default:
			logger.Error("Failed to book calendar event", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book calendar event."})
		}
		return
	}

	slot := models.NewSlotResult(result.Start, result.End)
	c.JSON(http.StatusOK, gin.H{
		"status":    slot.Status,
		"startTime": slot.StartTime,
		"endTime":   slot.EndTime,
		"bookingId": result.ID,
	})
}

// parseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date in loc.
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD or RFC 3339 timestamp, got %q", raw)
	}
	return t, nil
}
