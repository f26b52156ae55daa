package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// ErrOracleUnavailable is returned when the voice oracle cannot be reached.
var ErrOracleUnavailable = errors.New("dispatch oracle is unavailable")

// VoiceDispatchOutcome is the operator-facing result of a voice command.
// Unsuccessful outcomes are normal operation (a misheard command, a busy
// courier) and carry an explanation instead of an error.
type VoiceDispatchOutcome struct {
	// Success reports whether an assignment was made.
	Success bool
	// Message explains the outcome to the operator.
	Message string
	// OrderID is the assigned order on success.
	OrderID string
	// CourierID is the courier who took it on success.
	CourierID string
}

// VoiceDispatchCommandHandler interprets a spoken command through the oracle
// and executes the resulting assignment.
//
// The oracle's answer is stringly typed; both identifiers are re-parsed and
// the referenced aggregates reloaded inside the transaction before any state
// changes. A suggestion that no longer holds (order taken, courier went
// offline) yields an unsuccessful outcome, not a half-applied assignment.
type VoiceDispatchCommandHandler struct {
	uowFactory UoWFactory
	oracle     ports.DispatchOracle
	dispatcher services.Dispatcher
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewVoiceDispatchCommandHandler creates a handler for voice dispatch.
func NewVoiceDispatchCommandHandler(
	uowFactory UoWFactory,
	oracle ports.DispatchOracle,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) VoiceDispatchCommandHandler {
	return VoiceDispatchCommandHandler{
		uowFactory: uowFactory,
		oracle:     oracle,
		dispatcher: services.NewDispatcher(),
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the voice command and returns the operator-facing outcome.
func (h *VoiceDispatchCommandHandler) Handle(
	ctx context.Context,
	cmd VoiceDispatchCommand,
) (VoiceDispatchOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return VoiceDispatchOutcome{}, err
	}
	if h.oracle == nil {
		return VoiceDispatchOutcome{}, ErrOracleUnavailable
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return VoiceDispatchOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	pending, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return VoiceDispatchOutcome{}, err
	}

	roster, err := courierRepo.GetAllOnline(ctx)
	if err != nil {
		return VoiceDispatchOutcome{}, err
	}

	parsed, err := h.oracle.ParseVoiceCommand(ctx, cmd.Transcript(), pending, roster)
	if err != nil {
		return VoiceDispatchOutcome{}, errors.Join(ErrOracleUnavailable, err)
	}
	if !parsed.Success {
		return VoiceDispatchOutcome{Message: parsed.Message}, nil
	}

	orderID, err := kernel.UUIDFromString(parsed.OrderID)
	if err != nil {
		return VoiceDispatchOutcome{Message: "could not match the command to an order"}, nil
	}

	courierID, err := kernel.UUIDFromString(parsed.CourierID)
	if err != nil {
		return VoiceDispatchOutcome{Message: "could not match the command to a courier"}, nil
	}

	orderEntity, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return VoiceDispatchOutcome{Message: "the mentioned order no longer exists"}, nil
	}

	courierEntity, err := courierRepo.Get(ctx, courierID)
	if err != nil {
		return VoiceDispatchOutcome{Message: "the mentioned courier no longer exists"}, nil
	}

	rationale := "voice command"
	if parsed.Message != "" {
		rationale = parsed.Message
	}

	if err = h.dispatcher.Assign(orderEntity, courierEntity, services.SourceVoice, rationale); err != nil {
		if h.logger != nil {
			h.logger.Info("voice assignment rejected",
				"order_id", parsed.OrderID,
				"courier_id", parsed.CourierID,
				"reason", err)
		}
		return VoiceDispatchOutcome{Message: err.Error()}, nil
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return VoiceDispatchOutcome{}, err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return VoiceDispatchOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return VoiceDispatchOutcome{}, err
	}

	publishOrderStatus(ctx, h.publisher, h.logger, orderEntity, services.SourceVoice.String())

	return VoiceDispatchOutcome{
		Success:   true,
		Message:   parsed.Message,
		OrderID:   orderEntity.ID().String(),
		CourierID: courierEntity.ID().String(),
	}, nil
}
