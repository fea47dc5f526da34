package cron

import (
	"context"
	"time"

	calendarRepo "cleanquote/database/repository/calendar"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const retentionSchedule = "@daily"

// RetentionJob deletes bookings that ended longer than Retention ago.
type RetentionJob struct {
	Repo      calendarRepo.CalendarRepository
	Retention time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewRetentionJob(repo calendarRepo.CalendarRepository, retentionDays int, logger *zap.Logger) *RetentionJob {
	return &RetentionJob{
		Repo:      repo,
		Retention: time.Duration(retentionDays) * 24 * time.Hour,
		Logger:    logger,
		Now:       time.Now,
	}
}

// Run performs one purge and returns how many bookings were removed.
func (j *RetentionJob) Run(ctx context.Context) (int64, error) {
	cutoff := j.Now().Add(-j.Retention)
	n, err := j.Repo.DeleteEndedBefore(ctx, cutoff)
	if err != nil {
		j.Logger.Error("Booking retention purge failed", zap.Time("cutoff", cutoff), zap.Error(err))
		return 0, err
	}
	j.Logger.Info("Booking retention purge finished", zap.Time("cutoff", cutoff), zap.Int64("deleted", n))
	return n, nil
}

// StartMaintenance schedules the retention purge on its own cron and starts
// it. A non-positive retention disables the purge and returns nil.
func StartMaintenance(job *RetentionJob, loc *time.Location) (*cron.Cron, error) {
	if job.Retention <= 0 {
		job.Logger.Info("Booking retention disabled")
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(retentionSchedule, func() {
		_, _ = job.Run(context.Background())
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
