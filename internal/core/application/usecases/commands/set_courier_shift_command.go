package commands

import (
	"errors"

	"dispatch/internal/core/application/session"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetCourierShiftCommandIsNotConstructed = errors.New(
	"SetCourierShiftCommand must be created via NewSetCourierShiftCommand constructor",
)

// SetCourierShiftCommand toggles a courier on or off shift. Couriers toggle
// their own shift at will; the acting session must be allowed to act for
// the target courier.
type SetCourierShiftCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	online    bool
	actor     session.Session

	guard guard.ConstructorGuard
}

// NewSetCourierShiftCommand creates a command to set the courier's shift state.
func NewSetCourierShiftCommand(
	courierID kernel.UUID,
	online bool,
	actor session.Session,
) (SetCourierShiftCommand, error) {
	command := SetCourierShiftCommand{
		online: online,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return SetCourierShiftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierShiftCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierShiftCommandIsNotConstructed)
}

// CourierID returns the target courier's ID.
func (c SetCourierShiftCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Online returns the desired shift state.
func (c SetCourierShiftCommand) Online() bool {
	return c.online
}

// Actor returns the acting session.
func (c SetCourierShiftCommand) Actor() session.Session {
	return c.actor
}

func (c *SetCourierShiftCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
