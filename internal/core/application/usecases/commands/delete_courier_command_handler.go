package commands

import (
	"context"
	"errors"
)

// ErrCourierHasActiveOrders is returned when deleting a courier who still
// holds Accepted or InRoute orders. Those orders must complete (or the
// courier's run must otherwise end) before the courier can leave the roster.
var ErrCourierHasActiveOrders = errors.New("courier still has active orders")

// DeleteCourierCommandHandler removes a courier from the roster.
// The active-order check and the delete share a transaction so an assignment
// racing the deletion cannot orphan an order.
type DeleteCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteCourierCommandHandler creates a handler for courier deletion.
func NewDeleteCourierCommandHandler(uowFactory UoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion.
func (h *DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	// Ensures the courier exists before checking their workload.
	if _, err := courierRepo.Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	active, err := orderRepo.CountActiveByCourier(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrCourierHasActiveOrders
	}

	if err = courierRepo.Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
