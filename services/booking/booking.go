// Package booking turns quote-form requests into calendar bookings.
package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	calendarRepo "cleanquote/database/repository/calendar"
	"cleanquote/models"
	"cleanquote/services/scheduler"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService on top of a calendar
// repository. Finding a slot and storing it happen under one lock so two
// requests in this process cannot take the same slot.
type DefaultBookingService struct {
	Repo      calendarRepo.CalendarRepository
	Policy    models.BusinessCalendarPolicy
	Reminders ReminderScheduler
	Logger    *zap.Logger
	Now       func() time.Time

	mu sync.Mutex
}

func NewBookingService(repo calendarRepo.CalendarRepository, policy models.BusinessCalendarPolicy, reminders ReminderScheduler, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:      repo,
		Policy:    policy,
		Reminders: reminders,
		Logger:    logger,
		Now:       time.Now,
	}
}

func (s *DefaultBookingService) BookNextAvailable(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if scheduler.WholeHours(req.EstimatedHours) <= 0 {
		return nil, ErrInvalidDuration
	}

	loc := s.Policy.Loc()
	preferred := req.PreferredStartDate.In(loc)
	windowStart := time.Date(preferred.Year(), preferred.Month(), preferred.Day(), 0, 0, 0, 0, loc)
	windowEnd := windowStart.AddDate(0, 0, s.Policy.SearchHorizonDays+1)

	s.mu.Lock()
	defer s.mu.Unlock()

	booked, err := s.snapshot(ctx, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	start, end, ok := scheduler.NextSlot(req.EstimatedHours, preferred, booked, s.Policy)
	if !ok {
		s.Logger.Info("no slot in search horizon",
			zap.Time("preferred", preferred),
			zap.Float64("hours", req.EstimatedHours),
			zap.Int("horizonDays", s.Policy.SearchHorizonDays))
		return nil, ErrSlotUnavailable
	}

	return s.store(ctx, req, start, end)
}

func (s *DefaultBookingService) BookAt(ctx context.Context, req models.BookingRequest, start time.Time) (*models.Booking, error) {
	hours := scheduler.WholeHours(req.EstimatedHours)
	if hours <= 0 {
		return nil, ErrInvalidDuration
	}
	end := start.Add(time.Duration(hours) * time.Hour)
	if !scheduler.WithinBusinessHours(start, end, s.Policy) {
		return nil, ErrOutsideBusinessHours
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booked, err := s.snapshot(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if scheduler.Overlaps(start, end, booked) {
		return nil, ErrSlotConflict
	}

	return s.store(ctx, req, start, end)
}

func (s *DefaultBookingService) Availability(ctx context.Context, from time.Time, days int, durationHours float64) ([]models.DayAvailability, error) {
	if scheduler.WholeHours(durationHours) <= 0 {
		return nil, ErrInvalidDuration
	}
	if days <= 0 {
		return nil, ErrInvalidDays
	}
	loc := s.Policy.Loc()
	if now := s.Now(); from.Before(now) {
		from = now
	}
	from = from.In(loc)
	windowStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)

	bookings, err := s.Repo.ListOverlapping(ctx, windowStart, windowStart.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}
	return scheduler.DailyAvailability(from, days, durationHours, calendarRepo.Intervals(bookings), s.Policy), nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	bookings, err := s.Repo.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	s.Logger.Info("booking cancelled", zap.String("bookingID", id))

	if s.Reminders != nil {
		if err := s.Reminders.CancelReminder(ctx, id); err != nil {
			s.Logger.Warn("failed to cancel booking reminder", zap.String("bookingID", id), zap.Error(err))
		}
	}
	return nil
}

// snapshot loads the intervals overlapping the window. Time already gone by is
// reported as occupied so no slot is offered in the past.
func (s *DefaultBookingService) snapshot(ctx context.Context, from, to time.Time) ([]models.BookedInterval, error) {
	bookings, err := s.Repo.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar: %w", err)
	}
	booked := calendarRepo.Intervals(bookings)
	if now := s.Now(); now.After(from) {
		booked = append(booked, models.BookedInterval{Start: from, End: now})
	}
	return booked, nil
}

func (s *DefaultBookingService) store(ctx context.Context, req models.BookingRequest, start, end time.Time) (*models.Booking, error) {
	b := models.Booking{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Email:          req.Email,
		Address:        req.Address,
		EstimatedHours: req.EstimatedHours,
		Start:          start.UTC(),
		End:            end.UTC(),
		Status:         models.BookingStatusBooked,
		CreatedAt:      s.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.Time("start", b.Start),
		zap.Time("end", b.End))

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, b); err != nil {
			s.Logger.Warn("failed to schedule booking reminder", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	return &b, nil
}
