package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// StoreDemandResponse is the demand counters for one linked store.
type StoreDemandResponse struct {
	StoreID       string `json:"store_id"`
	Name          string `json:"name"`
	PendingOrders int    `json:"pending_orders"`
	ActiveOrders  int    `json:"active_orders"`
}

// RestockForecastResponse is the projection for one product.
type RestockForecastResponse struct {
	ProductID              string  `json:"product_id"`
	Name                   string  `json:"name"`
	Stock                  int     `json:"stock"`
	EstimatedDaysRemaining float64 `json:"estimated_days_remaining"`
	RecommendedRestock     int     `json:"recommended_restock"`
	Reasoning              string  `json:"reasoning"`
}

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	var request struct {
		Name     string          `json:"name"`
		Location LocationPayload `json:"location"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	location, err := kernel.NewLocation(request.Location.Lat, request.Location.Lng)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateStoreCommand(request.Name, location)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.CreateStore.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id": cmd.StoreID().String(),
	})
}

// ToggleStoreLink handles PUT /api/v1/stores/:id/link.
func (s *Server) ToggleStoreLink(ctx echo.Context) error {
	sess, err := sessionFromRequest(ctx)
	if err != nil {
		return err
	}
	if err := sess.CanManageFleet(s.policy); err != nil {
		return handlerError(ctx, err)
	}

	storeID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request struct {
		Linked bool `json:"linked"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewToggleStoreLinkCommand(storeID, request.Linked)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.handlers.ToggleStoreLink.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStoreDemand handles GET /api/v1/stores/demand.
func (s *Server) GetStoreDemand(ctx echo.Context) error {
	demand, err := s.handlers.GetStoreDemand.Handle(
		ctx.Request().Context(), queries.NewGetStoreDemandQuery())
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]StoreDemandResponse, len(demand))
	for i, d := range demand {
		response[i] = StoreDemandResponse{
			StoreID:       d.StoreID.String(),
			Name:          d.Name,
			PendingOrders: d.PendingOrders,
			ActiveOrders:  d.ActiveOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestockForecast handles GET /api/v1/stores/:id/restock-forecast.
func (s *Server) GetRestockForecast(ctx echo.Context) error {
	storeID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetRestockForecastQuery(storeID)
	if err != nil {
		return badRequest(ctx, err)
	}

	forecast, err := s.handlers.GetRestockForecast.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]RestockForecastResponse, len(forecast))
	for i, f := range forecast {
		response[i] = RestockForecastResponse{
			ProductID:              f.ProductID.String(),
			Name:                   f.Name,
			Stock:                  f.Stock,
			EstimatedDaysRemaining: f.EstimatedDaysRemaining,
			RecommendedRestock:     f.RecommendedRestock,
			Reasoning:              f.Reasoning,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
