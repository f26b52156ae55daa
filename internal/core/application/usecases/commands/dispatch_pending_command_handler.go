package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrNoOrderFound        = errors.New("no order found")
)

// DispatchPendingCommandHandler runs one round of suggested dispatch.
//
// The oracle proposes a courier from the online pool; the proposal is only
// honored when the suggested courier is actually in that pool, otherwise the
// handler falls back to the deterministic nearest-courier pick. Either way
// the final eligibility check happens in the domain dispatcher against the
// state loaded in this transaction.
type DispatchPendingCommandHandler struct {
	uowFactory UoWFactory
	oracle     ports.DispatchOracle
	dispatcher services.Dispatcher
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDispatchPendingCommandHandler creates a handler for suggested dispatch.
func NewDispatchPendingCommandHandler(
	uowFactory UoWFactory,
	oracle ports.DispatchOracle,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		oracle:     oracle,
		dispatcher: services.NewDispatcher(),
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes one suggested-dispatch round.
// Returns ErrNoOrderFound when the queue is empty and ErrNoFreeCouriersFound
// when nobody is online.
func (h *DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
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

	orderEntity, err := orderRepo.GetFirstInPendingStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	pool, err := courierRepo.GetAllOnline(ctx)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return ErrNoFreeCouriersFound
	}

	chosen, rationale := h.choose(ctx, orderEntity, pool)
	if chosen == nil {
		fallback, pickErr := h.dispatcher.PickNearest(orderEntity, pool)
		if pickErr != nil {
			return pickErr
		}
		chosen, rationale = fallback, "nearest online courier"
	}

	if err = h.dispatcher.Assign(orderEntity, chosen, services.SourceSuggested, rationale); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, chosen); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderStatus(ctx, h.publisher, h.logger, orderEntity, services.SourceSuggested.String())
	return nil
}

// choose asks the oracle for a courier and resolves the answer against the
// pool. Returns nil when the oracle is unavailable, fails, or suggests a
// courier outside the pool; the caller then falls back to proximity.
func (h *DispatchPendingCommandHandler) choose(
	ctx context.Context,
	o *order.Order,
	pool []*courier.Courier,
) (*courier.Courier, string) {
	if h.oracle == nil {
		return nil, ""
	}

	suggestedID, err := h.oracle.SuggestAssignment(ctx, o, pool)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("dispatch suggestion failed, falling back to proximity",
				"order_id", o.ID().String(),
				"error", err)
		}
		return nil, ""
	}

	for _, c := range pool {
		if c.ID().String() == suggestedID {
			return c, "dispatch assistant suggestion"
		}
	}

	if h.logger != nil {
		h.logger.Warn("dispatch suggestion references courier outside the online pool",
			"order_id", o.ID().String(),
			"courier_id", suggestedID)
	}
	return nil, ""
}
