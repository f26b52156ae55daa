package queries

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// restockTargetDays is the stock coverage the deterministic fallback aims
// for when recommending a reorder quantity.
const restockTargetDays = 14.0

// GetRestockForecastQueryHandler projects inventory coverage for a store's
// catalog. The oracle's projection is preferred; when it is unavailable the
// handler computes a deterministic forecast from average daily sales.
type GetRestockForecastQueryHandler struct {
	products ports.ProductRepository
	oracle   ports.DispatchOracle
	log      *slog.Logger
}

// NewGetRestockForecastQueryHandler creates a handler for restock forecast
// queries. The oracle may be nil; the handler then always uses the
// deterministic projection.
func NewGetRestockForecastQueryHandler(
	products ports.ProductRepository,
	oracle ports.DispatchOracle,
	log *slog.Logger,
) (GetRestockForecastQueryHandler, error) {
	if products == nil {
		return GetRestockForecastQueryHandler{}, errs.NewValueIsRequiredError("products")
	}

	return GetRestockForecastQueryHandler{
		products: products,
		oracle:   oracle,
		log:      log,
	}, nil
}

// Handle resolves the forecast for the queried store's catalog.
func (h GetRestockForecastQueryHandler) Handle(
	ctx context.Context,
	query GetRestockForecastQuery,
) ([]GetRestockForecastQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog, err := h.products.GetByStore(ctx, query.StoreID())
	if err != nil {
		return nil, err
	}

	if len(catalog) == 0 {
		return []GetRestockForecastQueryResponse{}, nil
	}

	if h.oracle != nil {
		items, oracleErr := h.oracle.PredictRestock(ctx, catalog)
		if oracleErr == nil {
			if forecast, ok := matchForecast(catalog, items); ok {
				return forecast, nil
			}
			h.logWarn("oracle restock forecast did not cover the catalog",
				slog.String("store_id", query.StoreID().String()))
		} else {
			h.logWarn("oracle restock forecast failed",
				slog.String("store_id", query.StoreID().String()),
				slog.Any("error", oracleErr))
		}
	}

	return fallbackForecast(catalog), nil
}

// matchForecast joins oracle items back onto the live catalog by product ID.
// Items referencing unknown products are discarded; a forecast that covers
// no product at all is rejected.
func matchForecast(
	catalog []*product.Product,
	items []ports.RestockForecastItem,
) ([]GetRestockForecastQueryResponse, bool) {
	byID := make(map[kernel.UUID]ports.RestockForecastItem, len(items))
	for _, item := range items {
		id, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			continue
		}
		byID[id] = item
	}

	forecast := make([]GetRestockForecastQueryResponse, 0, len(catalog))
	matched := false
	for _, p := range catalog {
		resp := GetRestockForecastQueryResponse{
			ProductID: p.ID(),
			Name:      p.Name(),
			Stock:     p.Stock(),
		}

		if item, ok := byID[p.ID()]; ok {
			matched = true
			resp.EstimatedDaysRemaining = item.EstimatedDaysRemaining
			resp.RecommendedRestock = item.RecommendedRestock
			resp.Reasoning = item.Reasoning
		} else {
			resp = deterministicProjection(p)
		}

		forecast = append(forecast, resp)
	}

	return forecast, matched
}

// fallbackForecast projects every product deterministically.
func fallbackForecast(catalog []*product.Product) []GetRestockForecastQueryResponse {
	forecast := make([]GetRestockForecastQueryResponse, 0, len(catalog))
	for _, p := range catalog {
		forecast = append(forecast, deterministicProjection(p))
	}
	return forecast
}

// deterministicProjection derives coverage from average daily sales and
// recommends restocking up to the target coverage window.
func deterministicProjection(p *product.Product) GetRestockForecastQueryResponse {
	resp := GetRestockForecastQueryResponse{
		ProductID: p.ID(),
		Name:      p.Name(),
		Stock:     p.Stock(),
	}

	days, ok := p.DaysOfCoverage()
	if !ok {
		resp.Reasoning = "no recorded sales, keeping current stock level"
		return resp
	}

	resp.EstimatedDaysRemaining = days

	target := int(math.Ceil(p.AvgDailySales() * restockTargetDays))
	if target > p.Stock() {
		resp.RecommendedRestock = target - p.Stock()
	}

	resp.Reasoning = fmt.Sprintf(
		"%.1f days of stock at %.1f daily sales, targeting %d days of coverage",
		days, p.AvgDailySales(), int(restockTargetDays))

	return resp
}

func (h GetRestockForecastQueryHandler) logWarn(msg string, args ...any) {
	if h.log == nil {
		return
	}
	h.log.Warn(msg, args...)
}
