package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrNumberIsRequired     = errors.New("number is required")
	ErrClientNameIsRequired = errors.New("client name is required")
	ErrAddressIsRequired    = errors.New("address is required")
)

// CreateOrderCommand represents a request to admit a new order from a store.
// Orders are only admitted from linked stores; the handler enforces that.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	storeID    kernel.UUID
	number     string
	clientName string
	address    string
	location   kernel.Location
	price      kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to admit a new order.
// Automatically generates a unique ID for the order.
func NewCreateOrderCommand(
	storeID kernel.UUID,
	number string,
	clientName string,
	address string,
	location kernel.Location,
	price kernel.Money,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setStoreID(storeID),
		command.setNumber(number),
		command.setClientName(clientName),
		command.setAddress(address),
		command.setLocation(location),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StoreID returns the originating store's ID.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Number returns the human-readable order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// ClientName returns the recipient name.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Location returns the geocoded drop point.
func (c CreateOrderCommand) Location() kernel.Location {
	return c.location
}

// Price returns the order price.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setStoreID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.storeID = id
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
