package commands

import (
	"context"
)

// ToggleStoreLinkCommandHandler connects or pauses a store's order feed.
type ToggleStoreLinkCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewToggleStoreLinkCommandHandler creates a handler for store link toggling.
func NewToggleStoreLinkCommandHandler(uowFactory StoreUoWFactory) ToggleStoreLinkCommandHandler {
	return ToggleStoreLinkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the link toggle. Loads the store, applies the desired
// link state and persists it within a transaction.
func (h *ToggleStoreLinkCommandHandler) Handle(ctx context.Context, cmd ToggleStoreLinkCommand) error {
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

	storeRepo := uow.StoreRepository()

	storeEntity, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if cmd.Linked() {
		err = storeEntity.Link()
	} else {
		err = storeEntity.Unlink()
	}
	if err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, storeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
