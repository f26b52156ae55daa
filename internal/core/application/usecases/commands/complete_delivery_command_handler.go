package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrCreditSkipped is returned when a delivery completed but the wallet
// credit could not be applied because the bound courier no longer exists.
// The order's completion still commits; the ledger discrepancy is surfaced
// to the caller instead of blocking the delivery.
var ErrCreditSkipped = errors.New("delivery completed but wallet credit was skipped")

// CompleteDeliveryCommandHandler finishes a delivery: the order moves
// InRoute -> Delivered, the courier's wallet is credited per their pay
// policy, and the courier returns to the idle roster when this was their
// last active order. Order, wallet and status change commit atomically.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	policy     session.Policy
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	policy session.Policy,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the completion.
// Returns ErrCreditSkipped after committing the order transition when the
// bound courier cannot be found.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	courierID := orderEntity.Courier()
	if courierID == nil {
		return session.ErrNotAuthorized
	}
	if err = cmd.Actor().CanActFor(*courierID, h.policy); err != nil {
		return err
	}

	if err = orderEntity.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	courierEntity, err := courierRepo.Get(ctx, *courierID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		// The delivery itself happened; commit the order and surface the
		// missing wallet instead of blocking the courier in the field.
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return commitErr
		}
		publishOrderStatus(ctx, h.publisher, h.logger, orderEntity, "")
		return ErrCreditSkipped
	}
	if err != nil {
		return err
	}

	earnings, err := courierEntity.PayPolicy().Earnings(orderEntity.Price())
	if err != nil {
		return err
	}
	if err = courierEntity.Credit(earnings); err != nil {
		return err
	}

	remaining, err := orderRepo.CountActiveByCourier(ctx, *courierID)
	if err != nil {
		return err
	}
	if remaining == 0 {
		if err = courierEntity.Release(); err != nil {
			return err
		}
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderStatus(ctx, h.publisher, h.logger, orderEntity, "")
	return nil
}
