package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierMovementJob drifts on-shift couriers every four seconds so the
// console board shows live positions.
type CourierMovementJob struct {
	handler commands.MoveCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierMovementJob creates the movement tick job.
func NewCourierMovementJob(handler commands.MoveCouriersCommandHandler, logger *slog.Logger) *CourierMovementJob {
	return &CourierMovementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_movement_job"),
	}
}

// Start schedules the movement tick every four seconds.
func (j *CourierMovementJob) Start() error {
	_, err := j.cron.AddFunc("*/4 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMoveCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Courier movement tick failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier movement job started")
	return nil
}

// Stop stops the movement job.
func (j *CourierMovementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier movement job stopped")
}
