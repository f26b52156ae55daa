package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a request to register a merchant location.
// Fresh stores start unlinked; their order feed must be connected explicitly.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID  kernel.UUID
	name     string
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to register a new store.
// Automatically generates a unique ID for the store.
func NewCreateStoreCommand(name string, location kernel.Location) (CreateStoreCommand, error) {
	command := CreateStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStoreID(kernel.NewUUID()),
		command.setName(name),
		command.setLocation(location),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the generated store ID.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the store name from the command.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Location returns the store's pickup point from the command.
func (c CreateStoreCommand) Location() kernel.Location {
	return c.location
}

func (c *CreateStoreCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.storeID = id
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateStoreCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
