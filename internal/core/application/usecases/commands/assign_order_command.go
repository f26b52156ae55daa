package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
	ErrSourceIsInvalid = errors.New("assignment source is invalid")
)

// AssignOrderCommand binds a specific pending order to a specific courier
// on behalf of an assignment channel. Manual assignments come from the
// operator's drag-and-drop; voice and suggested assignments are composed by
// their own handlers after the oracle's output has been resolved to IDs.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, courierID, services.SourceManual, "")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("assignment rejected: %v", err)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	source    services.AssignmentSource
	rationale string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to bind an order to a courier.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	source services.AssignmentSource,
	rationale string,
) (AssignOrderCommand, error) {
	command := AssignOrderCommand{
		rationale: rationale,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
		command.setSource(source),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the target order's ID.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the target courier's ID.
func (c AssignOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Source returns the assignment channel.
func (c AssignOrderCommand) Source() services.AssignmentSource {
	return c.source
}

// Rationale returns the dispatch explanation to record on the order.
func (c AssignOrderCommand) Rationale() string {
	return c.rationale
}

func (c *AssignOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AssignOrderCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *AssignOrderCommand) setSource(source services.AssignmentSource) error {
	switch source {
	case services.SourceManual, services.SourceVoice, services.SourceSuggested:
		c.source = source
		return nil
	case services.SourceUnknown:
	}
	return ErrSourceIsInvalid
}
