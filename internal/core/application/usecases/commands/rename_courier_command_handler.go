package commands

import (
	"context"
)

// RenameCourierCommandHandler changes a courier's display name.
type RenameCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRenameCourierCommandHandler creates a handler for courier renaming.
func NewRenameCourierCommandHandler(uowFactory CourierUoWFactory) RenameCourierCommandHandler {
	return RenameCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rename.
func (h *RenameCourierCommandHandler) Handle(ctx context.Context, cmd RenameCourierCommand) error {
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

	if err = courierEntity.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
