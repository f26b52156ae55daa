package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store aggregate.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetAllLinked retrieves stores whose order feed is connected.
	// Only these stores admit new orders.
	GetAllLinked(ctx context.Context) ([]*store.Store, error)
}
