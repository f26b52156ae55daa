package ports

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// ErrRoutePlanNotCached is returned when no cached plan exists for the
// courier and their current set of in-route orders.
var ErrRoutePlanNotCached = errors.New("route plan is not cached")

// RoutePlanCache stores computed route plans keyed by courier and the exact
// set of in-route orders the plan covers. Any change in that set produces a
// different key, so membership changes invalidate naturally.
type RoutePlanCache interface {
	// Get returns the cached plan for the courier and order set, or
	// ErrRoutePlanNotCached.
	Get(ctx context.Context, courierID kernel.UUID, orderIDs []kernel.UUID) (services.RoutePlan, error)

	// Put stores a plan for the courier and order set.
	Put(ctx context.Context, courierID kernel.UUID, orderIDs []kernel.UUID, plan services.RoutePlan) error
}
