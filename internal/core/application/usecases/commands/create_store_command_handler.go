package commands

import (
	"context"

	"dispatch/internal/core/domain/model/store"
)

// CreateStoreCommandHandler handles the business logic for store registration.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store creation command.
// Creates a new unlinked store and persists it within a transaction.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
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

	storeEntity, err := store.NewStore(cmd.StoreID(), cmd.Name(), cmd.Location())
	if err != nil {
		return err
	}

	if err = uow.StoreRepository().Add(ctx, storeEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
