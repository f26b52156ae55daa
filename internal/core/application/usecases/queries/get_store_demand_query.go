package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetStoreDemandQueryIsNotConstructed = errors.New(
	"GetStoreDemandQuery must be created via NewGetStoreDemandQuery constructor",
)

// GetStoreDemandQuery retrieves order demand per linked store. Unlinked
// stores are excluded; they do not participate in order generation.
type GetStoreDemandQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStoreDemandQuery creates a query to retrieve demand per linked store.
func NewGetStoreDemandQuery() GetStoreDemandQuery {
	return GetStoreDemandQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStoreDemandQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreDemandQueryIsNotConstructed)
}

// GetStoreDemandQueryResponse represents demand counters for one store.
type GetStoreDemandQueryResponse struct {
	StoreID kernel.UUID
	Name    string
	// PendingOrders counts orders still waiting for a courier.
	PendingOrders int
	// ActiveOrders counts orders already assigned (Accepted or InRoute).
	ActiveOrders int
}
