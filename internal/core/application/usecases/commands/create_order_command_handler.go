package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/store"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler admits new orders into the dispatch queue.
// Only linked stores may feed orders; the check and the insert share one
// transaction so an unlink racing with an incoming order cannot slip one in.
type CreateOrderCommandHandler struct {
	uowFactory StoreOrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order admission.
func NewCreateOrderCommandHandler(
	uowFactory StoreOrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order admission command.
// Verifies the originating store is linked, persists the Pending order, and
// publishes the creation event after commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	storeEntity, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if !storeEntity.IsLinked() {
		return store.ErrStoreIsNotLinked
	}

	orderEntity, err := order.NewOrder(
		cmd.OrderID(), cmd.StoreID(),
		cmd.Number(), cmd.ClientName(), cmd.Address(),
		cmd.Location(), cmd.Price(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderStatus(ctx, h.publisher, h.logger, orderEntity, "")
	return nil
}
