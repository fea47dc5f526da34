package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	calendarRepo "cleanquote/database/repository/calendar"
	"cleanquote/models"
	"cleanquote/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderNotifier delivers a booking reminder to the customer.
type ReminderNotifier interface {
	NotifyBookingReminder(ctx context.Context, p models.ReminderPayload) error
}

// LogNotifier records reminders in the application log. It is the
// delivery channel until an email provider is wired in.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) NotifyBookingReminder(ctx context.Context, p models.ReminderPayload) error {
	n.Logger.Info("Booking reminder",
		zap.String("bookingID", p.BookingID),
		zap.String("email", p.Email),
		zap.String("address", p.Address),
		zap.String("startTime", p.StartTime),
		zap.String("endTime", p.EndTime),
	)
	return nil
}

// BookingLookup confirms a booking still exists before it is reminded.
type BookingLookup interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// InitReminderWorker runs the async worker in background and returns the
// server so the caller can shut it down.
func InitReminderWorker(redisOpts asynq.RedisClientOpt, bookings BookingLookup, notifier ReminderNotifier, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				tasks.ReminderQueue: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, handleBookingReminder(bookings, notifier, logger))

	// Start async worker with retry logic
	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("Reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Max retry attempts reached; reminders will not be delivered")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func handleBookingReminder(bookings BookingLookup, notifier ReminderNotifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		if bookings != nil {
			if _, err := bookings.GetByID(ctx, p.BookingID); err != nil {
				if errors.Is(err, calendarRepo.ErrBookingNotFound) {
					logger.Info("Skipping reminder for cancelled booking", zap.String("bookingID", p.BookingID))
					return nil
				}
				return fmt.Errorf("failed to load booking %s: %w", p.BookingID, err)
			}
		}

		if err := notifier.NotifyBookingReminder(ctx, p); err != nil {
			logger.Error("Failed to send booking reminder", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
