package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cleanquote/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingReminder = "booking:reminder"
	ReminderQueue       = "default"
)

// ReminderTaskID is the queue ID of the reminder for bookingID.
func ReminderTaskID(bookingID string) string {
	return "reminder:" + bookingID
}

func NewBookingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.Queue(ReminderQueue),
		asynq.TaskID(ReminderTaskID(payload.BookingID)),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the reminder scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskDeleter is the part of *asynq.Inspector used to withdraw a reminder.
type TaskDeleter interface {
	DeleteTask(queue, id string) error
}

// ReminderScheduler queues a reminder a fixed lead time before each job.
type ReminderScheduler struct {
	queue     Enqueuer
	inspector TaskDeleter
	lead      time.Duration
	now       func() time.Time
}

func NewReminderScheduler(queue Enqueuer, inspector TaskDeleter, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{queue: queue, inspector: inspector, lead: lead, now: time.Now}
}

// ScheduleReminder enqueues the reminder for b. Jobs starting within the lead
// time get their reminder immediately.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, b models.Booking) error {
	payload := models.ReminderPayload{
		BookingID: b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Address:   b.Address,
		StartTime: b.Start.UTC().Format(models.SlotTimeLayout),
		EndTime:   b.End.UTC().Format(models.SlotTimeLayout),
	}

	fireAt := b.Start.Add(-s.lead)
	if now := s.now(); fireAt.Before(now) {
		fireAt = now
	}

	task, opts, err := NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.queue.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// CancelReminder withdraws the pending reminder of a booking. A reminder that
// already ran or was never queued is not an error.
func (s *ReminderScheduler) CancelReminder(ctx context.Context, bookingID string) error {
	if s.inspector == nil {
		return nil
	}
	err := s.inspector.DeleteTask(ReminderQueue, ReminderTaskID(bookingID))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to delete reminder: %w", err)
}
