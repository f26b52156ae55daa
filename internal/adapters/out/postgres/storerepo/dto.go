// Package storerepo persists the store aggregate.
package storerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
type StoreDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Linked   bool        `gorm:"not null;index"`
}

// TableName overrides GORM's default naming convention to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// LocationDTO represents the embedded store coordinates.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

func fromDomain(store *store.Store) StoreDTO {
	return StoreDTO{
		ID:   store.ID().Bytes(),
		Name: store.Name(),
		Location: LocationDTO{
			Lat: store.Location().Lat(),
			Lng: store.Location().Lng(),
		},
		Linked: store.IsLinked(),
	}
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, dto.Name, loc, dto.Linked)
}
