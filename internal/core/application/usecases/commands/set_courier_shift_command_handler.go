package commands

import (
	"context"

	"dispatch/internal/core/application/session"
)

// SetCourierShiftCommandHandler toggles a courier's shift state.
// Going offline is always allowed, even mid-route; going online is rejected
// while the courier is Busy. Couriers toggle themselves; operators may
// toggle anyone.
type SetCourierShiftCommandHandler struct {
	uowFactory CourierUoWFactory
	policy     session.Policy
}

// NewSetCourierShiftCommandHandler creates a handler for shift toggling.
func NewSetCourierShiftCommandHandler(
	uowFactory CourierUoWFactory,
	policy session.Policy,
) SetCourierShiftCommandHandler {
	return SetCourierShiftCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the shift toggle.
func (h *SetCourierShiftCommandHandler) Handle(ctx context.Context, cmd SetCourierShiftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Actor().CanActFor(cmd.CourierID(), h.policy); err != nil {
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

	if cmd.Online() {
		err = courierEntity.GoOnline()
	} else {
		err = courierEntity.GoOffline()
	}
	if err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
