// File: database/repository/calendar/memory.go
package calendarRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cleanquote/models"
)

type memoryCalendarRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewMemoryCalendarRepo returns a process-local CalendarRepository, used when
// no database is configured and in tests.
func NewMemoryCalendarRepo(seed ...models.Booking) CalendarRepository {
	r := &memoryCalendarRepo{bookings: make(map[string]models.Booking, len(seed))}
	for _, b := range seed {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *memoryCalendarRepo) Insert(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}
	r.bookings[booking.ID] = booking
	return nil
}

func (r *memoryCalendarRepo) ListOverlapping(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.Start.Before(to) && b.End.After(from) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func (r *memoryCalendarRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (r *memoryCalendarRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *memoryCalendarRepo) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, b := range r.bookings {
		if b.End.Before(cutoff) {
			delete(r.bookings, id)
			n++
		}
	}
	return n, nil
}
