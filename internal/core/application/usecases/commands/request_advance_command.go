package commands

import (
	"errors"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRequestAdvanceCommandIsNotConstructed = errors.New(
	"RequestAdvanceCommand must be created via NewRequestAdvanceCommand constructor",
)

// RequestAdvanceCommand files a wallet advance request for a courier.
// The acting session must be allowed to act for that courier.
type RequestAdvanceCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	amount    kernel.Money
	actor     session.Session

	guard guard.ConstructorGuard
}

// NewRequestAdvanceCommand creates a command to request a wallet advance.
func NewRequestAdvanceCommand(
	courierID kernel.UUID,
	amount kernel.Money,
	actor session.Session,
) (RequestAdvanceCommand, error) {
	command := RequestAdvanceCommand{
		amount: amount,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return RequestAdvanceCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestAdvanceCommand) Validate() error {
	return c.guard.Validate(ErrRequestAdvanceCommandIsNotConstructed)
}

// CourierID returns the requesting courier's ID.
func (c RequestAdvanceCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the requested advance amount.
func (c RequestAdvanceCommand) Amount() kernel.Money {
	return c.amount
}

// Actor returns the acting session.
func (c RequestAdvanceCommand) Actor() session.Session {
	return c.actor
}

func (c *RequestAdvanceCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
