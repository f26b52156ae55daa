package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// AssignOrderCommandHandler executes an order-to-courier binding.
// Loads both aggregates, applies the per-source eligibility rules through
// the domain dispatcher, and persists order and courier in one transaction.
//
// The courier's eligibility is evaluated inside the transaction against
// freshly loaded state, so a suggestion computed from a stale snapshot is
// rejected here rather than applied.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the assignment command. On success the order is Accepted
// with the courier bound and the courier is Busy; the assignment event is
// published after commit.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Assign(orderEntity, courierEntity, cmd.Source(), cmd.Rationale()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderStatus(ctx, h.publisher, h.logger, orderEntity, cmd.Source().String())
	return nil
}
