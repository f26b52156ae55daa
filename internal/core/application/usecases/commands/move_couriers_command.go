package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrMoveCouriersCommandIsNotConstructed = errors.New(
	"MoveCouriersCommand must be created via NewMoveCouriersCommand constructor",
)

// MoveCouriersCommand triggers one tick of the courier position simulation.
// Couriers on shift drift slightly around their last position, mimicking the
// live GPS feed the console renders.
type MoveCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewMoveCouriersCommand creates a new command to trigger one movement tick.
func NewMoveCouriersCommand() MoveCouriersCommand {
	return MoveCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MoveCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMoveCouriersCommandIsNotConstructed)
}
