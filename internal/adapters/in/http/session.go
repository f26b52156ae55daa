package http

import (
	"net/http"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Session headers. A courier terminal sends its own ID; the console sends
// the impersonation header when an operator views the board as a courier.
// Requests without either header act as a plain operator.
const (
	HeaderCourierID     = "X-Courier-Id"
	HeaderImpersonateID = "X-Impersonate-Courier-Id"
)

// sessionFromRequest builds the acting identity from request headers.
func sessionFromRequest(ctx echo.Context) (session.Session, error) {
	if raw := ctx.Request().Header.Get(HeaderCourierID); raw != "" {
		courierID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return session.Session{}, echo.NewHTTPError(
				http.StatusBadRequest, "invalid "+HeaderCourierID+" header")
		}
		return session.NewCourierSession(courierID)
	}

	if raw := ctx.Request().Header.Get(HeaderImpersonateID); raw != "" {
		courierID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return session.Session{}, echo.NewHTTPError(
				http.StatusBadRequest, "invalid "+HeaderImpersonateID+" header")
		}
		return session.NewImpersonatedSession(courierID)
	}

	return session.NewOperatorSession(), nil
}
