package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// OrderResponse is one order in the dispatch board read model.
type OrderResponse struct {
	ID         string          `json:"id"`
	StoreID    string          `json:"store_id"`
	Number     string          `json:"number"`
	ClientName string          `json:"client_name"`
	Address    string          `json:"address"`
	Location   LocationPayload `json:"location"`
	PriceCents int64           `json:"price_cents"`
	Status     string          `json:"status"`
	CourierID  *string         `json:"courier_id,omitempty"`
	Rationale  string          `json:"rationale,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetActiveOrders.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		var courierID *string
		if o.CourierID != nil {
			id := o.CourierID.String()
			courierID = &id
		}

		response[i] = OrderResponse{
			ID:         o.ID.String(),
			StoreID:    o.StoreID.String(),
			Number:     o.Number,
			ClientName: o.ClientName,
			Address:    o.Address,
			Location: LocationPayload{
				Lat: o.Location.Lat(),
				Lng: o.Location.Lng(),
			},
			PriceCents: o.PriceCents,
			Status:     o.Status,
			CourierID:  courierID,
			Rationale:  o.Rationale,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	var request struct {
		StoreID    string          `json:"store_id"`
		Number     string          `json:"number"`
		ClientName string          `json:"client_name"`
		Address    string          `json:"address"`
		Location   LocationPayload `json:"location"`
		PriceCents int64           `json:"price_cents"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	storeID, err := kernel.UUIDFromString(request.StoreID)
	if err != nil {
		return badRequest(ctx, err)
	}

	location, err := kernel.NewLocation(request.Location.Lat, request.Location.Lng)
	if err != nil {
		return badRequest(ctx, err)
	}

	price, err := kernel.NewMoneyFromCents(request.PriceCents)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		storeID, request.Number, request.ClientName,
		request.Address, location, price)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id": cmd.OrderID().String(),
	})
}

// AssignOrder handles POST /api/v1/orders/:id/assignment. This is the
// manual path; an operator picks the courier themselves.
func (s *Server) AssignOrder(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request struct {
		CourierID string `json:"courier_id"`
		Rationale string `json:"rationale"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(
		orderID, courierID, services.SourceManual, request.Rationale)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/acceptance. The assigned
// courier confirms the pickup.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, sess)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/completion. Marks the
// drop delivered and credits the courier's wallet in the same transaction.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, sess)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
