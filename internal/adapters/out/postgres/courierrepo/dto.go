// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// The wallet and the pending advance are stored as integer cents so ledger
// arithmetic in SQL stays exact.
type CourierDTO struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name                string      `gorm:"type:varchar(255);not null"`
	Status              int         `gorm:"type:int;not null;index"`
	Location            LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	PayKind             int         `gorm:"type:int;not null"`
	PayFixedCents       int64       `gorm:"type:bigint;not null"`
	PayPercent          int         `gorm:"type:int;not null"`
	WalletCents         int64       `gorm:"type:bigint;not null"`
	PendingAdvanceCents *int64      `gorm:"type:bigint"`
	LastAdvanceAt       *time.Time
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO represents the embedded geocoordinates within the courier table.
// Stores the courier's last reported position.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(courier *courier.Courier) CourierDTO {
	var pendingAdvance *int64
	if adv := courier.PendingAdvance(); adv != nil {
		cents := adv.Cents()
		pendingAdvance = &cents
	}

	return CourierDTO{
		ID:     courier.ID().Bytes(),
		Name:   courier.Name(),
		Status: int(courier.Status()),
		Location: LocationDTO{
			Lat: courier.Location().Lat(),
			Lng: courier.Location().Lng(),
		},
		PayKind:             int(courier.PayPolicy().Kind()),
		PayFixedCents:       courier.PayPolicy().FixedAmount().Cents(),
		PayPercent:          courier.PayPolicy().Percent(),
		WalletCents:         courier.Wallet().Cents(),
		PendingAdvanceCents: pendingAdvance,
		LastAdvanceAt:       courier.LastAdvanceAt(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate including wallet state using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	fixed, err := kernel.NewMoneyFromCents(dto.PayFixedCents)
	if err != nil {
		return nil, err
	}

	payPolicy, err := courier.RestorePayPolicy(courier.PayKind(dto.PayKind), fixed, dto.PayPercent)
	if err != nil {
		return nil, err
	}

	wallet, err := kernel.NewMoneyFromCents(dto.WalletCents)
	if err != nil {
		return nil, err
	}

	var pendingAdvance *kernel.Money
	if dto.PendingAdvanceCents != nil {
		adv, advErr := kernel.NewMoneyFromCents(*dto.PendingAdvanceCents)
		if advErr != nil {
			return nil, advErr
		}
		pendingAdvance = &adv
	}

	return courier.RestoreCourier(
		id, dto.Name, loc,
		courier.Status(dto.Status), payPolicy,
		wallet, pendingAdvance, dto.LastAdvanceAt,
	)
}
