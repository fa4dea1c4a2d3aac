// Package schedule runs named jobs at a fixed daily UTC time. It is the
// in-process replacement for a hosted timer service: one goroutine per job,
// stopped by context cancellation.
package schedule

import (
	"context"
	"log/slog"
	"time"
)

// Job is a named scheduled task. Run receives a fresh context per invocation.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Daily blocks, running job every day at hour:minute UTC until ctx is done.
// Job failures are logged and left to the scheduler's next tick; work a job
// committed before failing is not rolled back.
func Daily(ctx context.Context, hour, minute int, job Job) {
	for {
		next := nextRun(time.Now().UTC(), hour, minute)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		slog.Info("scheduled job starting", "job", job.Name)
		if err := job.Run(ctx); err != nil {
			slog.Error("scheduled job failed", "job", job.Name, "error", err)
			continue
		}
		slog.Info("scheduled job finished", "job", job.Name)
	}
}

// nextRun returns the first instant at hour:minute UTC strictly after now.
func nextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
