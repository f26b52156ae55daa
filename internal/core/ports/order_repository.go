package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and courier binding.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the oldest order still waiting for
	// a courier. Used by the suggested-dispatch loop.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetAllPending retrieves every order still waiting for a courier,
	// newest last. Used as context for voice command interpretation.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllActive retrieves orders in Accepted or InRoute status across
	// the whole fleet.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetInRouteByCourier retrieves the given courier's orders currently
	// in route, the input to route planning.
	GetInRouteByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// CountActiveByCourier counts the courier's Accepted and InRoute
	// orders. Used to decide whether a completion releases the courier
	// and whether a courier may be deleted.
	CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int, error)
}
