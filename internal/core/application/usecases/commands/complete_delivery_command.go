package commands

import (
	"errors"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand marks an in-route order as delivered, credits the
// courier's wallet per their pay policy, and releases the courier when no
// active orders remain.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   session.Session

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(orderID kernel.UUID, actor session.Session) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting session.
func (c CompleteDeliveryCommand) Actor() session.Session {
	return c.actor
}

func (c *CompleteDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}
