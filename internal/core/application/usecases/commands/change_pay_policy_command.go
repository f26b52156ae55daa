package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrChangePayPolicyCommandIsNotConstructed = errors.New(
	"ChangePayPolicyCommand must be created via NewChangePayPolicyCommand constructor",
)

// ChangePayPolicyCommand switches a courier to a new compensation scheme.
// Takes effect for deliveries completed after the change.
type ChangePayPolicyCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	payPolicy courier.PayPolicy

	guard guard.ConstructorGuard
}

// NewChangePayPolicyCommand creates a command to change a courier's pay policy.
func NewChangePayPolicyCommand(
	courierID kernel.UUID,
	payPolicy courier.PayPolicy,
) (ChangePayPolicyCommand, error) {
	command := ChangePayPolicyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setPayPolicy(payPolicy),
	); err != nil {
		return ChangePayPolicyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePayPolicyCommand) Validate() error {
	return c.guard.Validate(ErrChangePayPolicyCommandIsNotConstructed)
}

// CourierID returns the target courier's ID.
func (c ChangePayPolicyCommand) CourierID() kernel.UUID {
	return c.courierID
}

// PayPolicy returns the new compensation scheme.
func (c ChangePayPolicyCommand) PayPolicy() courier.PayPolicy {
	return c.payPolicy
}

func (c *ChangePayPolicyCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *ChangePayPolicyCommand) setPayPolicy(payPolicy courier.PayPolicy) error {
	if err := payPolicy.Validate(); err != nil {
		return err
	}

	c.payPolicy = payPolicy
	return nil
}
