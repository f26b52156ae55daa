package commands

import (
	"context"
	"time"

	"dispatch/internal/core/application/session"
)

// RequestAdvanceCommandHandler files a wallet advance request.
// The domain enforces the single-pending rule and the balance ceiling; this
// handler adds the authorization check and the transaction boundary.
type RequestAdvanceCommandHandler struct {
	uowFactory CourierUoWFactory
	policy     session.Policy
	now        func() time.Time
}

// NewRequestAdvanceCommandHandler creates a handler for advance requests.
func NewRequestAdvanceCommandHandler(
	uowFactory CourierUoWFactory,
	policy session.Policy,
) RequestAdvanceCommandHandler {
	return RequestAdvanceCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		now:        time.Now,
	}
}

// Handle processes the advance request.
func (h *RequestAdvanceCommandHandler) Handle(ctx context.Context, cmd RequestAdvanceCommand) error {
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

	if err = courierEntity.RequestAdvance(cmd.Amount(), h.now().UTC()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
