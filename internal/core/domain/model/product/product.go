package product

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog item tracked per store for the restock forecast.
// Stock and average daily sales feed the inventory oracle, which estimates
// how many days of coverage remain.
type Product struct {
	id            kernel.UUID
	storeID       kernel.UUID
	name          string
	stock         int
	avgDailySales float64
	guard         guard.ConstructorGuard
}

// NewProduct creates a new Product for a store's catalog.
func NewProduct(id, storeID kernel.UUID, name string, stock int, avgDailySales float64) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setStoreID(storeID),
		product.setName(name),
		product.setStock(stock),
		product.setAvgDailySales(avgDailySales),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(id, storeID kernel.UUID, name string, stock int, avgDailySales float64) (*Product, error) {
	return NewProduct(id, storeID, name, stock, avgDailySales)
}

// Validate checks if the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// StoreID returns the owning store's identifier.
func (p *Product) StoreID() kernel.UUID {
	return p.storeID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Stock returns the units currently on hand.
func (p *Product) Stock() int {
	return p.stock
}

// AvgDailySales returns the trailing average of units sold per day.
func (p *Product) AvgDailySales() float64 {
	return p.avgDailySales
}

// AdjustStock applies a delta to the on-hand count. The count never goes
// below zero.
func (p *Product) AdjustStock(delta int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	next := p.stock + delta
	if next < 0 {
		return errs.NewValueIsOutOfRangeError("stock", next, 0, p.stock)
	}

	p.stock = next
	return nil
}

// DaysOfCoverage estimates how many days the current stock lasts at the
// trailing sales rate. Returns zero coverage and false when the product
// has no sales history to extrapolate from.
func (p *Product) DaysOfCoverage() (float64, bool) {
	if p.avgDailySales <= 0 {
		return 0, false
	}
	return float64(p.stock) / p.avgDailySales, true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	p.storeID = storeID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}

	p.stock = stock
	return nil
}

func (p *Product) setAvgDailySales(avg float64) error {
	if avg < 0 {
		return errs.NewValueIsOutOfRangeError("avgDailySales", avg, 0, "unbounded")
	}

	p.avgDailySales = avg
	return nil
}
