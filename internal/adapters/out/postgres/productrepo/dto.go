// Package productrepo persists the product catalog.
package productrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Stock         int       `gorm:"type:int;not null"`
	AvgDailySales float64   `gorm:"type:double precision;not null"`
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:            product.ID().Bytes(),
		StoreID:       product.StoreID().Bytes(),
		Name:          product.Name(),
		Stock:         product.Stock(),
		AvgDailySales: product.AvgDailySales(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, storeID, dto.Name, dto.Stock, dto.AvgDailySales)
}
