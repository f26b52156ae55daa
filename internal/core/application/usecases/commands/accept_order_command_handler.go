package commands

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/ports"
)

// AcceptOrderCommandHandler marks an assigned order as picked up.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     session.Policy
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy session.Policy,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the acceptance. The order moves Accepted -> InRoute; only
// a session allowed to act for the bound courier may do this.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	courierID := orderEntity.Courier()
	if courierID == nil {
		return session.ErrNotAuthorized
	}
	if err = cmd.Actor().CanActFor(*courierID, h.policy); err != nil {
		return err
	}

	if err = orderEntity.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderStatus(ctx, h.publisher, h.logger, orderEntity, "")
	return nil
}
