package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRenameCourierCommandIsNotConstructed = errors.New(
	"RenameCourierCommand must be created via NewRenameCourierCommand constructor",
)

// RenameCourierCommand changes a courier's display name.
type RenameCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string

	guard guard.ConstructorGuard
}

// NewRenameCourierCommand creates a command to rename a courier.
func NewRenameCourierCommand(courierID kernel.UUID, name string) (RenameCourierCommand, error) {
	command := RenameCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setName(name),
	); err != nil {
		return RenameCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameCourierCommand) Validate() error {
	return c.guard.Validate(ErrRenameCourierCommandIsNotConstructed)
}

// CourierID returns the target courier's ID.
func (c RenameCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the new display name.
func (c RenameCourierCommand) Name() string {
	return c.name
}

func (c *RenameCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *RenameCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
