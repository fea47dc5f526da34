// File: database/repository/calendar/interface.go
package calendarRepo

import (
	"context"
	"errors"
	"time"

	"cleanquote/database"
	"cleanquote/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBookingNotFound is returned when no booking matches the given ID.
var ErrBookingNotFound = errors.New("booking not found")

// CalendarRepository persists the cleaning calendar.
type CalendarRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	// ListOverlapping returns bookings whose [start, end) intersects [from, to), ordered by start.
	ListOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	// DeleteEndedBefore removes bookings that ended before cutoff and reports how many were removed.
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a MongoDB-backed CalendarRepository on the shared client.
func NewMongoCalendarRepo(dbName string) CalendarRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoCalendarRepo{
		coll: db.Collection("bookings"),
	}
}

// Intervals projects bookings onto the intervals they occupy.
func Intervals(bookings []models.Booking) []models.BookedInterval {
	out := make([]models.BookedInterval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Interval())
	}
	return out
}
