package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// VoiceDispatchResponse is the operator-facing outcome of a spoken command.
type VoiceDispatchResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OrderID   string `json:"order_id,omitempty"`
	CourierID string `json:"courier_id,omitempty"`
}

// DispatchRunResponse reports whether a proactive dispatch pass assigned
// anything.
type DispatchRunResponse struct {
	Dispatched bool   `json:"dispatched"`
	Message    string `json:"message,omitempty"`
}

// VoiceDispatch handles POST /api/v1/dispatch/voice. A failed
// interpretation is a successful request; the outcome explains what went
// wrong.
func (s *Server) VoiceDispatch(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	var request struct {
		Transcript string `json:"transcript"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewVoiceDispatchCommand(request.Transcript)
	if err != nil {
		return badRequest(ctx, err)
	}

	outcome, err := s.handlers.VoiceDispatch.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VoiceDispatchResponse{
		Success:   outcome.Success,
		Message:   outcome.Message,
		OrderID:   outcome.OrderID,
		CourierID: outcome.CourierID,
	})
}

// DispatchPending handles POST /api/v1/dispatch/run. Having nothing to
// dispatch is a normal outcome, not an error.
func (s *Server) DispatchPending(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	cmd := commands.NewDispatchPendingCommand()

	err = s.handlers.DispatchPending.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, DispatchRunResponse{Dispatched: true})
	case errors.Is(err, commands.ErrNoOrderFound),
		errors.Is(err, commands.ErrNoFreeCouriersFound):
		return ctx.JSON(http.StatusOK, DispatchRunResponse{
			Dispatched: false,
			Message:    err.Error(),
		})
	default:
		return handlerError(ctx, err)
	}
}
