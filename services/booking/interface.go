package booking

import (
	"context"
	"time"

	"cleanquote/models"
)

// BookingService places cleaning jobs on the calendar.
type BookingService interface {
	BookNextAvailable(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	BookAt(ctx context.Context, req models.BookingRequest, start time.Time) (*models.Booking, error)
	Availability(ctx context.Context, from time.Time, days int, durationHours float64) ([]models.DayAvailability, error)
	ListBookings(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

// ReminderScheduler queues a customer reminder for a new booking and
// withdraws it when the booking is cancelled.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, b models.Booking) error
	CancelReminder(ctx context.Context, bookingID string) error
}
