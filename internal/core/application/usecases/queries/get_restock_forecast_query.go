package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetRestockForecastQueryIsNotConstructed = errors.New(
	"GetRestockForecastQuery must be created via NewGetRestockForecastQuery constructor",
)

// GetRestockForecastQuery requests an inventory projection for one store's
// catalog. The forecast is informational; nothing in the dispatch pipeline
// acts on it.
type GetRestockForecastQuery struct {
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestockForecastQuery creates a query for the given store's forecast.
func NewGetRestockForecastQuery(storeID kernel.UUID) (GetRestockForecastQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetRestockForecastQuery{}, err
	}

	return GetRestockForecastQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// StoreID returns the store whose catalog is being projected.
func (q GetRestockForecastQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Validate ensures the query was created through the constructor.
func (q GetRestockForecastQuery) Validate() error {
	return q.guard.Validate(ErrGetRestockForecastQueryIsNotConstructed)
}

// GetRestockForecastQueryResponse is the projection for one product.
type GetRestockForecastQueryResponse struct {
	ProductID kernel.UUID
	Name      string
	Stock     int
	// EstimatedDaysRemaining is how long the current stock lasts at the
	// average sales rate. Zero when the product has no recorded sales.
	EstimatedDaysRemaining float64
	// RecommendedRestock is the suggested reorder quantity.
	RecommendedRestock int
	// Reasoning explains the projection.
	Reasoning string
}
