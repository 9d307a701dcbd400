package jobs

import (
	"context"
	"log/slog"

	"orderdispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleReadyOrdersHandler is satisfied by
// commands.RepublishStaleReadyOrdersCommandHandler.
type StaleReadyOrdersHandler interface {
	Handle(ctx context.Context, command commands.RepublishStaleReadyOrdersCommand) (int, error)
}

// StaleReadyOrdersJob re-announces ready orders nobody has claimed. It runs
// on a cron schedule with seconds precision.
type StaleReadyOrdersJob struct {
	handler  StaleReadyOrdersHandler
	command  commands.RepublishStaleReadyOrdersCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleReadyOrdersJob creates the job. schedule is a six field cron
// expression, e.g. "*/30 * * * * *".
func NewStaleReadyOrdersJob(
	handler StaleReadyOrdersHandler,
	command commands.RepublishStaleReadyOrdersCommand,
	schedule string,
	logger *slog.Logger,
) *StaleReadyOrdersJob {
	return &StaleReadyOrdersJob{
		handler:  handler,
		command:  command,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_ready_orders_job"),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *StaleReadyOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale ready orders job started",
		"schedule", j.schedule, "older_than", j.command.OlderThan())
	return nil
}

// Run performs one pass.
func (j *StaleReadyOrdersJob) Run() {
	ctx := context.Background()

	n, err := j.handler.Handle(ctx, j.command)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale ready orders job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "Re-announced stale ready orders", "count", n)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *StaleReadyOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale ready orders job stopped")
}
