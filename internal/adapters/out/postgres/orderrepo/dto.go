// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and courier so the dispatch queue and per-courier route
// lookups stay cheap.
type OrderDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	CourierID  *uuid.UUID  `gorm:"type:uuid;index"`
	Number     string      `gorm:"type:varchar(64);not null"`
	ClientName string      `gorm:"type:varchar(255);not null"`
	Address    string      `gorm:"type:varchar(512);not null"`
	Location   LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	PriceCents int64       `gorm:"type:bigint;not null"`
	Status     int         `gorm:"type:int;not null;index"`
	Rationale  string      `gorm:"type:text"`
	CreatedAt  time.Time   `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents the embedded drop-point coordinates within the order table.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := order.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:         order.ID().Bytes(),
		StoreID:    order.StoreID().Bytes(),
		CourierID:  courierID,
		Number:     order.Number(),
		ClientName: order.ClientName(),
		Address:    order.Address(),
		Location: LocationDTO{
			Lat: order.Location().Lat(),
			Lng: order.Location().Lng(),
		},
		PriceCents: order.Price().Cents(),
		Status:     int(order.Status()),
		Rationale:  order.Rationale(),
		CreatedAt:  order.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and courier binding using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, storeID,
		dto.Number, dto.ClientName, dto.Address,
		loc, price,
		order.Status(dto.Status), courierID, dto.Rationale,
		dto.CreatedAt,
	)
}
