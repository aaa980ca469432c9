package jobs

import (
	"context"
	"log/slog"
	"time"

	"salesorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// staleOrderSweepSchedule runs the sweep at the top of every minute.
const staleOrderSweepSchedule = "0 * * * * *"

// StaleOrderCancellationJob periodically cancels pending orders that were
// never confirmed. Runs every minute and cancels orders older than maxAge.
type StaleOrderCancellationJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates a job for sweeping stale pending orders.
// Orders in Pending status older than maxAge are cancelled on each run.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the stale order sweep on its schedule.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc(staleOrderSweepSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)",
		"max_age", j.maxAge.String())
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
