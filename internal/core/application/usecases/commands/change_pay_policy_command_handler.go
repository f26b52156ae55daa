package commands

import (
	"context"
)

// ChangePayPolicyCommandHandler switches a courier's compensation scheme.
type ChangePayPolicyCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewChangePayPolicyCommandHandler creates a handler for pay policy changes.
func NewChangePayPolicyCommandHandler(uowFactory CourierUoWFactory) ChangePayPolicyCommandHandler {
	return ChangePayPolicyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pay policy change.
func (h *ChangePayPolicyCommandHandler) Handle(ctx context.Context, cmd ChangePayPolicyCommand) error {
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

	if err = courierEntity.ChangePayPolicy(cmd.PayPolicy()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
