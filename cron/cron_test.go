package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	calendarRepo "cleanquote/database/repository/calendar"
	"cleanquote/models"
	"cleanquote/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingNotifier struct {
	got []models.ReminderPayload
	err error
}

func (r *recordingNotifier) NotifyBookingReminder(ctx context.Context, p models.ReminderPayload) error {
	r.got = append(r.got, p)
	return r.err
}

func TestHandleBookingReminder(t *testing.T) {
	payload := models.ReminderPayload{BookingID: "b-1", Email: "ada@example.com", StartTime: "2024-01-08T09:00:00.000Z"}
	task, _, err := tasks.NewBookingReminderTask(payload, time.Now())
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	repo := calendarRepo.NewMemoryCalendarRepo(models.Booking{ID: "b-1"})
	handler := handleBookingReminder(repo, notifier, zap.NewNop())
	require.NoError(t, handler.ProcessTask(context.Background(), task))
	assert.Equal(t, []models.ReminderPayload{payload}, notifier.got)

	notifier.err = errors.New("smtp down")
	assert.Error(t, handler.ProcessTask(context.Background(), task))
}

func TestHandleBookingReminder_BadPayloadSkipsRetry(t *testing.T) {
	handler := handleBookingReminder(nil, &recordingNotifier{}, zap.NewNop())
	err := handler.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeBookingReminder, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleBookingReminder_SkipsCancelledBooking(t *testing.T) {
	task, _, err := tasks.NewBookingReminderTask(models.ReminderPayload{BookingID: "b-1"}, time.Now())
	require.NoError(t, err)

	repo := calendarRepo.NewMemoryCalendarRepo(models.Booking{ID: "b-1"})
	require.NoError(t, repo.Delete(context.Background(), "b-1"))

	notifier := &recordingNotifier{}
	handler := handleBookingReminder(repo, notifier, zap.NewNop())
	require.NoError(t, handler.ProcessTask(context.Background(), task))
	assert.Empty(t, notifier.got)
}

type failingLookup struct{ err error }

func (f failingLookup) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, f.err
}

func TestHandleBookingReminder_LookupErrorIsRetried(t *testing.T) {
	task, _, err := tasks.NewBookingReminderTask(models.ReminderPayload{BookingID: "b-1"}, time.Now())
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	handler := handleBookingReminder(failingLookup{err: errors.New("mongo down")}, notifier, zap.NewNop())
	err = handler.ProcessTask(context.Background(), task)
	assert.ErrorContains(t, err, "mongo down")
	assert.NotErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, notifier.got)
}

func TestLogNotifier(t *testing.T) {
	raw, _ := json.Marshal(models.ReminderPayload{BookingID: "b-1"})
	var p models.ReminderPayload
	require.NoError(t, json.Unmarshal(raw, &p))
	assert.NoError(t, LogNotifier{Logger: zap.NewNop()}.NotifyBookingReminder(context.Background(), p))
}

func TestRetentionJob_Run(t *testing.T) {
	now := time.Date(2024, time.June, 1, 3, 0, 0, 0, time.UTC)
	old := models.Booking{ID: "old", Start: now.AddDate(0, 0, -100), End: now.AddDate(0, 0, -100).Add(2 * time.Hour)}
	recent := models.Booking{ID: "recent", Start: now.AddDate(0, 0, -10), End: now.AddDate(0, 0, -10).Add(2 * time.Hour)}
	upcoming := models.Booking{ID: "upcoming", Start: now.AddDate(0, 0, 3), End: now.AddDate(0, 0, 3).Add(2 * time.Hour)}
	repo := calendarRepo.NewMemoryCalendarRepo(old, recent, upcoming)

	job := NewRetentionJob(repo, 90, zap.NewNop())
	job.Now = func() time.Time { return now }

	n, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetByID(context.Background(), "old")
	assert.ErrorIs(t, err, calendarRepo.ErrBookingNotFound)
	_, err = repo.GetByID(context.Background(), "recent")
	assert.NoError(t, err)
}

func TestStartMaintenance(t *testing.T) {
	job := NewRetentionJob(calendarRepo.NewMemoryCalendarRepo(), 0, zap.NewNop())
	c, err := StartMaintenance(job, nil)
	require.NoError(t, err)
	assert.Nil(t, c)

	job = NewRetentionJob(calendarRepo.NewMemoryCalendarRepo(), 30, zap.NewNop())
	c, err = StartMaintenance(job, time.UTC)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}
