package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchSuggestionJob runs a proactive oracle-suggested dispatch pass
// every ten seconds, picking up pending orders nobody assigned by hand.
type DispatchSuggestionJob struct {
	handler commands.DispatchPendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchSuggestionJob creates the proactive dispatch job.
func NewDispatchSuggestionJob(handler commands.DispatchPendingCommandHandler, logger *slog.Logger) *DispatchSuggestionJob {
	return &DispatchSuggestionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_suggestion_job"),
	}
}

// Start schedules the dispatch pass every ten seconds.
func (j *DispatchSuggestionJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue or a fully busy roster is normal operation.
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Dispatch suggestion pass failed", "error", err)
			}
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch suggestion job started")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchSuggestionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch suggestion job stopped")
}
