package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrResolveAdvanceCommandIsNotConstructed = errors.New(
	"ResolveAdvanceCommand must be created via NewResolveAdvanceCommand constructor",
)

// ResolveAdvanceCommand settles a courier's pending advance request.
// Approval debits the wallet; denial discards the request untouched.
type ResolveAdvanceCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	approve   bool

	guard guard.ConstructorGuard
}

// NewResolveAdvanceCommand creates a command to settle a pending advance.
func NewResolveAdvanceCommand(courierID kernel.UUID, approve bool) (ResolveAdvanceCommand, error) {
	command := ResolveAdvanceCommand{
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return ResolveAdvanceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveAdvanceCommand) Validate() error {
	return c.guard.Validate(ErrResolveAdvanceCommandIsNotConstructed)
}

// CourierID returns the target courier's ID.
func (c ResolveAdvanceCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Approve reports whether the advance is approved or denied.
func (c ResolveAdvanceCommand) Approve() bool {
	return c.approve
}

func (c *ResolveAdvanceCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
