package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrToggleStoreLinkCommandIsNotConstructed = errors.New(
	"ToggleStoreLinkCommand must be created via NewToggleStoreLinkCommand constructor",
)

// ToggleStoreLinkCommand connects or pauses a store's order feed.
// Unlinking never touches orders already in flight.
type ToggleStoreLinkCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	linked  bool

	guard guard.ConstructorGuard
}

// NewToggleStoreLinkCommand creates a command to set the store's link state.
func NewToggleStoreLinkCommand(storeID kernel.UUID, linked bool) (ToggleStoreLinkCommand, error) {
	command := ToggleStoreLinkCommand{
		linked: linked,
		guard:  guard.NewConstructorGuard(),
	}

	if err := command.setStoreID(storeID); err != nil {
		return ToggleStoreLinkCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleStoreLinkCommand) Validate() error {
	return c.guard.Validate(ErrToggleStoreLinkCommandIsNotConstructed)
}

// StoreID returns the target store's ID.
func (c ToggleStoreLinkCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Linked returns the desired link state.
func (c ToggleStoreLinkCommand) Linked() bool {
	return c.linked
}

func (c *ToggleStoreLinkCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.storeID = id
	return nil
}
