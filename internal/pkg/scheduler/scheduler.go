// Package scheduler runs a background job on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type Job interface {
	Name() string
	RunOnce(ctx context.Context) error
}

// JobFunc adapts a function to Job.
type JobFunc struct {
	JobName string
	Run     func(ctx context.Context) error
}

func (f JobFunc) Name() string {
	return f.JobName
}

func (f JobFunc) RunOnce(ctx context.Context) error {
	return f.Run(ctx)
}

type Scheduler struct {
	schedule string
	job      Job
	cron     *cron.Cron
}

// New accepts standard five field expressions and descriptors such as
// "@daily" or "@every 6h". Overlapping runs are skipped.
func New(schedule string, job Job) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	return &Scheduler{
		schedule: schedule,
		job:      job,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}, nil
}

// Start blocks until ctx is cancelled, then waits for a running job to end.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunOnce(ctx); err != nil {
			slog.ErrorContext(ctx, "scheduled job failed",
				slog.String("job", s.job.Name()),
				slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	slog.InfoContext(ctx, "scheduler started",
		slog.String("job", s.job.Name()),
		slog.String("schedule", s.schedule))
	s.cron.Start()

	<-ctx.Done()

	<-s.cron.Stop().Done()
	slog.InfoContext(ctx, "scheduler stopped", slog.String("job", s.job.Name()))

	return ctx.Err()
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	startTime := time.Now()

	if err := s.job.RunOnce(ctx); err != nil {
		return fmt.Errorf("%s run failed: %w", s.job.Name(), err)
	}

	slog.InfoContext(ctx, "scheduled job finished",
		slog.String("job", s.job.Name()),
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))

	return nil
}
