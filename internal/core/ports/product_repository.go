package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for store catalog items.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByStore retrieves the catalog of a single store, the input to
	// the restock forecast.
	GetByStore(ctx context.Context, storeID kernel.UUID) ([]*product.Product, error)
}
