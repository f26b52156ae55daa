package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// DriftSource produces the per-tick coordinate deltas for the movement
// simulation. Injected so tests can drive deterministic drifts.
type DriftSource interface {
	// Delta returns the latitude and longitude displacement in degrees.
	Delta() (dLat, dLng float64)
}

// MoveCouriersCommandHandler advances the position simulation by one tick.
// Only couriers on shift (Online or Busy) move; offline couriers stay where
// they signed off.
type MoveCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
	drift      DriftSource
}

// NewMoveCouriersCommandHandler creates a handler for the movement tick.
func NewMoveCouriersCommandHandler(uowFactory CourierUoWFactory, drift DriftSource) MoveCouriersCommandHandler {
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
		drift:      drift,
	}
}

// Handle processes one movement tick for the whole roster.
func (h *MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
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

	roster, err := courierRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, courierEntity := range roster {
		if courierEntity.Status() == courier.StatusOffline {
			continue
		}

		dLat, dLng := h.drift.Delta()
		moved, shiftErr := courierEntity.Location().Shifted(dLat, dLng)
		if shiftErr != nil {
			return shiftErr
		}

		if err = courierEntity.MoveTo(moved); err != nil {
			return err
		}

		if err = courierRepo.Update(ctx, courierEntity); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
