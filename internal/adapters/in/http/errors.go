package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/store"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// badRequest rejects a request whose payload could not even form a command.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// handlerError maps a use case failure onto an HTTP status. Binding and
// command construction failures never reach this point; everything here is
// a decision made against live state.
func handlerError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, session.ErrNotAuthorized),
		errors.Is(err, session.ErrImpersonationIsReadOnly):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, courier.ErrAdvancePending),
		errors.Is(err, courier.ErrAdvanceExceedsBalance),
		errors.Is(err, courier.ErrNoAdvancePending),
		errors.Is(err, store.ErrStoreIsNotLinked),
		errors.Is(err, services.ErrCourierNotEligible),
		errors.Is(err, services.ErrNoEligibleCourier),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrOracleUnavailable):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
