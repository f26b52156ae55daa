// Package jobs runs the background simulation: synthetic order generation,
// courier drift, and proactive oracle-suggested dispatch. Every job goes
// through the same command handlers as the HTTP API.
package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"
)

// JobManager coordinates the scheduled jobs with a single start/stop
// surface.
type JobManager struct {
	orderGenerationJob    *OrderGenerationJob
	courierMovementJob    *CourierMovementJob
	dispatchSuggestionJob *DispatchSuggestionJob
}

// NewJobManager wires the three simulation jobs.
func NewJobManager(
	createOrderHandler commands.CreateOrderCommandHandler,
	moveCouriersHandler commands.MoveCouriersCommandHandler,
	dispatchPendingHandler commands.DispatchPendingCommandHandler,
	stores ports.StoreRepository,
	source RandomSource,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderGenerationJob:    NewOrderGenerationJob(createOrderHandler, stores, source, logger),
		courierMovementJob:    NewCourierMovementJob(moveCouriersHandler, logger),
		dispatchSuggestionJob: NewDispatchSuggestionJob(dispatchPendingHandler, logger),
	}
}

// StartAll starts every job; on failure already started jobs are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.orderGenerationJob.Start(); err != nil {
		return fmt.Errorf("start order generation job: %w", err)
	}

	if err := jm.dispatchSuggestionJob.Start(); err != nil {
		jm.orderGenerationJob.Stop()
		return fmt.Errorf("start dispatch suggestion job: %w", err)
	}

	if err := jm.courierMovementJob.Start(); err != nil {
		jm.dispatchSuggestionJob.Stop()
		jm.orderGenerationJob.Stop()
		return fmt.Errorf("start courier movement job: %w", err)
	}

	return nil
}

// StopAll stops every job.
func (jm *JobManager) StopAll() {
	jm.courierMovementJob.Stop()
	jm.dispatchSuggestionJob.Stop()
	jm.orderGenerationJob.Stop()
}
