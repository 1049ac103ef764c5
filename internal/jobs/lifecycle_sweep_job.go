package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs the lifecycle sweep every five minutes.
const DefaultSweepSchedule = "0 */5 * * * *"

// LifecycleSweepJob periodically advances SUBMITTED orders to IN_FULFILLMENT.
type LifecycleSweepJob struct {
	handler  commands.PromoteSubmittedOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewLifecycleSweepJob creates the sweep job on the given cron schedule
// (six-field expression with seconds). An empty schedule falls back to
// DefaultSweepSchedule.
func NewLifecycleSweepJob(
	handler commands.PromoteSubmittedOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *LifecycleSweepJob {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	return &LifecycleSweepJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "lifecycle_sweep_job"),
	}
}

// Start schedules the sweep. Each pass logs its outcome; a failed pass is an
// error worth operator attention, while skipped orders are routine.
func (j *LifecycleSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewPromoteSubmittedOrdersCommand()

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Lifecycle sweep failed",
				"error", err, "promoted", result.Promoted, "skipped", result.Skipped)
			return
		}

		if result.Promoted > 0 || result.Skipped > 0 {
			j.logger.InfoContext(ctx, "Lifecycle sweep completed",
				"promoted", result.Promoted, "skipped", result.Skipped)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Lifecycle sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the lifecycle sweep job.
func (j *LifecycleSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Lifecycle sweep job stopped")
}
