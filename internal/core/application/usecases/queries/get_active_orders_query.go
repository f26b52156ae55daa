package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that is still moving through
// the delivery pipeline: Pending, Accepted and InRoute.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve all active orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse represents one order in the dispatch board
// read model.
type GetActiveOrdersQueryResponse struct {
	ID         kernel.UUID
	StoreID    kernel.UUID
	Number     string
	ClientName string
	Address    string
	Location   kernel.Location
	PriceCents int64
	// Status is the lifecycle status rendered as text.
	Status string
	// CourierID is nil while the order is Pending.
	CourierID *kernel.UUID
	// Rationale explains how the current assignment came to be.
	Rationale string
	CreatedAt time.Time
}
