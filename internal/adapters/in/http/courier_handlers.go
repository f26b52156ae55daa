package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// LocationPayload is a geocoordinate in request and response bodies.
type LocationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PayPolicyPayload describes a courier's pay in request and response bodies.
// FixedCents applies to the Fixed kind, Percent to the Percentage kind.
type PayPolicyPayload struct {
	Kind       string `json:"kind"`
	FixedCents int64  `json:"fixed_cents,omitempty"`
	Percent    int    `json:"percent,omitempty"`
}

// CourierResponse is one courier in the roster read model.
type CourierResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Location            LocationPayload `json:"location"`
	Status              string          `json:"status"`
	Pay                 string          `json:"pay"`
	WalletCents         int64           `json:"wallet_cents"`
	PendingAdvanceCents *int64          `json:"pending_advance_cents,omitempty"`
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func toPayPolicy(payload PayPolicyPayload) (courier.PayPolicy, error) {
	switch payload.Kind {
	case "Fixed":
		amount, err := kernel.NewMoneyFromCents(payload.FixedCents)
		if err != nil {
			return courier.PayPolicy{}, err
		}
		return courier.NewFixedPayPolicy(amount)
	case "Percentage":
		return courier.NewPercentagePayPolicy(payload.Percent)
	default:
		return courier.PayPolicy{}, errs.NewValueIsInvalidError("pay policy kind")
	}
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(
		ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = CourierResponse{
			ID:   c.ID.String(),
			Name: c.Name,
			Location: LocationPayload{
				Lat: c.Location.Lat(),
				Lng: c.Location.Lng(),
			},
			Status:              c.Status,
			Pay:                 c.Pay,
			WalletCents:         c.WalletCents,
			PendingAdvanceCents: c.PendingAdvanceCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	var request struct {
		Name     string           `json:"name"`
		Location LocationPayload  `json:"location"`
		Pay      PayPolicyPayload `json:"pay"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	location, err := kernel.NewLocation(request.Location.Lat, request.Location.Lng)
	if err != nil {
		return badRequest(ctx, err)
	}

	payPolicy, err := toPayPolicy(request.Pay)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateCourierCommand(request.Name, location, payPolicy)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id": cmd.CourierID().String(),
	})
}

// DeleteCourier handles DELETE /api/v1/couriers/:id.
func (s *Server) DeleteCourier(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	courierID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteCourierCommand(courierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.DeleteCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCourierShift handles PUT /api/v1/couriers/:id/shift. Couriers toggle
// their own shift; the session decides who may act.
func (s *Server) SetCourierShift(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}

	courierID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request struct {
		Online bool `json:"online"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetCourierShiftCommand(courierID, request.Online, sess)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.SetCourierShift.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RenameCourier handles PUT /api/v1/couriers/:id/name.
func (s *Server) RenameCourier(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	courierID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request struct {
		Name string `json:"name"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRenameCourierCommand(courierID, request.Name)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.RenameCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePayPolicy handles PUT /api/v1/couriers/:id/pay-policy.
func (s *Server) ChangePayPolicy(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	courierID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request PayPolicyPayload
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	payPolicy, err := toPayPolicy(request)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangePayPolicyCommand(courierID, payPolicy)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.ChangePayPolicy.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestAdvance handles POST /api/v1/couriers/:id/advance. The session
// decides who may request; couriers act for themselves, operators for
// anyone.
func (s *Server) RequestAdvance(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}

	courierID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request struct {
		AmountCents int64 `json:"amount_cents"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	amount, err := kernel.NewMoneyFromCents(request.AmountCents)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRequestAdvanceCommand(courierID, amount, sess)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.RequestAdvance.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveAdvance handles POST /api/v1/couriers/:id/advance/resolution.
func (s *Server) ResolveAdvance(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	courierID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request struct {
		Approve bool `json:"approve"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewResolveAdvanceCommand(courierID, request.Approve)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.ResolveAdvance.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRoutePlan handles GET /api/v1/couriers/:id/route-plan.
func (s *Server) GetRoutePlan(ctx echo.Context) error {
	courierID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetRoutePlanQuery(courierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	plan, err := s.handlers.GetRoutePlan.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	stops := make([]RouteStopResponse, len(plan.Plan.Stops))
	for i, stop := range plan.Plan.Stops {
		stops[i] = RouteStopResponse{
			OrderID: stop.OrderID.String(),
			Number:  stop.Number,
			Address: stop.Address,
			Location: LocationPayload{
				Lat: stop.Location.Lat(),
				Lng: stop.Location.Lng(),
			},
			LegKm: stop.LegKm,
		}
	}

	return ctx.JSON(http.StatusOK, RoutePlanResponse{
		CourierID:    plan.CourierID.String(),
		Source:       plan.Source,
		Stops:        stops,
		TotalKm:      plan.Plan.TotalKm,
		TotalMinutes: plan.Plan.TotalMinutes,
		Advice:       plan.Plan.Advice,
	})
}

// RouteStopResponse is one leg of a courier's route plan.
type RouteStopResponse struct {
	OrderID  string          `json:"order_id"`
	Number   string          `json:"number"`
	Address  string          `json:"address"`
	Location LocationPayload `json:"location"`
	LegKm    float64         `json:"leg_km"`
}

// RoutePlanResponse is the full route plan with its provenance.
type RoutePlanResponse struct {
	CourierID    string              `json:"courier_id"`
	Source       string              `json:"source"`
	Stops        []RouteStopResponse `json:"stops"`
	TotalKm      float64             `json:"total_km"`
	TotalMinutes float64             `json:"total_minutes"`
	Advice       string              `json:"advice,omitempty"`
}
