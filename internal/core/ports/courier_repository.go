// Package ports defines repository and gateway interfaces for the dispatch
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and querying courier entities
// with their complete state including status, pay policy and wallet.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier on the roster, for fleet views and
	// the movement simulation.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllOnline retrieves couriers currently in Online status, the
	// eligible pool for voice and suggested assignments.
	GetAllOnline(ctx context.Context) ([]*courier.Courier, error)

	// Delete removes a courier from the roster. Callers must first verify
	// the courier holds no active orders.
	Delete(ctx context.Context, id kernel.UUID) error
}
