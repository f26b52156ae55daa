package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var ErrGetRoutePlanQueryIsNotConstructed = errors.New(
	"GetRoutePlanQuery must be created via NewGetRoutePlanQuery constructor",
)

// GetRoutePlanQuery requests an advisory visiting sequence over a courier's
// in-route orders. Plans never constrain completion order.
type GetRoutePlanQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRoutePlanQuery creates a query for the given courier's route plan.
func NewGetRoutePlanQuery(courierID kernel.UUID) (GetRoutePlanQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetRoutePlanQuery{}, err
	}

	return GetRoutePlanQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the courier whose route is being planned.
func (q GetRoutePlanQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Validate ensures the query was created through the constructor.
func (q GetRoutePlanQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutePlanQueryIsNotConstructed)
}

// Route plan sources, in falling order of preference.
const (
	RoutePlanSourceCache    = "cache"
	RoutePlanSourceOracle   = "oracle"
	RoutePlanSourceFallback = "fallback"
)

// GetRoutePlanQueryResponse carries the plan together with where it came
// from, so the console can tell an oracle route from the deterministic one.
type GetRoutePlanQueryResponse struct {
	CourierID kernel.UUID
	Plan      services.RoutePlan
	// Source is one of the RoutePlanSource constants.
	Source string
}
