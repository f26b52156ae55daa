package commands

import (
	"context"
)

// ResolveAdvanceCommandHandler settles a pending wallet advance.
// The balance is re-checked at approval inside the domain, so an approval
// can never drive the wallet negative even if it raced a concurrent debit.
type ResolveAdvanceCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewResolveAdvanceCommandHandler creates a handler for advance resolution.
func NewResolveAdvanceCommandHandler(uowFactory CourierUoWFactory) ResolveAdvanceCommandHandler {
	return ResolveAdvanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution.
func (h *ResolveAdvanceCommandHandler) Handle(ctx context.Context, cmd ResolveAdvanceCommand) error {
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

	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if cmd.Approve() {
		err = courierEntity.ApproveAdvance()
	} else {
		err = courierEntity.DenyAdvance()
	}
	if err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
