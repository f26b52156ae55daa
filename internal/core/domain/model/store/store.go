package store

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for store operations.
var (
	// ErrNameIsRequired is returned when attempting to create a store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStoreIsNotConstructed is returned when using an improperly initialized Store.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
	// ErrStoreIsNotLinked is returned when creating orders for a store whose
	// feed is disconnected from the dispatch console.
	ErrStoreIsNotLinked = errors.New("store is not linked")
)

// Store is the aggregate root for a merchant location that feeds orders into
// the dispatch console. A store must be linked before its orders are admitted;
// unlinking pauses the feed without losing orders already in flight.
type Store struct {
	id       kernel.UUID
	name     string
	location kernel.Location
	linked   bool
	guard    guard.ConstructorGuard
}

// NewStore creates a new Store. Fresh stores start unlinked; an operator
// connects the feed explicitly.
func NewStore(id kernel.UUID, name string, location kernel.Location) (*Store, error) {
	store := &Store{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		store.setID(id),
		store.setName(name),
		store.setLocation(location),
	); err != nil {
		return nil, err
	}

	return store, nil
}

// RestoreStore reconstructs a Store aggregate from persistent storage.
func RestoreStore(id kernel.UUID, name string, location kernel.Location, linked bool) (*Store, error) {
	store, err := NewStore(id, name, location)
	if err != nil {
		return nil, err
	}

	store.linked = linked
	return store, nil
}

// Validate checks if the Store was properly constructed.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// IsEqual compares two stores by their unique identifiers.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}

// Location returns the store's pickup point.
func (s *Store) Location() kernel.Location {
	return s.location
}

// IsLinked reports whether the store's order feed is connected.
func (s *Store) IsLinked() bool {
	return s.linked
}

// Link connects the store's order feed. Idempotent.
func (s *Store) Link() error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.linked = true
	return nil
}

// Unlink pauses the store's order feed. Orders already in flight are
// unaffected. Idempotent.
func (s *Store) Unlink() error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.linked = false
	return nil
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

func (s *Store) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	s.location = location
	return nil
}
