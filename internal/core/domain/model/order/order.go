package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrNumberIsRequired is returned when attempting to create an order without a display number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrClientNameIsRequired is returned when attempting to create an order without a client name.
	ErrClientNameIsRequired = errs.NewValueIsRequiredError("clientName")
	// ErrAddressIsRequired is returned when attempting to create an order without a delivery address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Order represents a delivery order in the system. It is the aggregate root that
// manages the order lifecycle from creation through assignment and acceptance to
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and originating store
//   - Must have a display number, client name, address and valid drop location
//   - Status transitions are strictly forward (see Status)
//   - The courier is bound exactly once, at assignment, and never changes
//   - Can only be created through NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// storeID identifies the store the order originates from
	storeID kernel.UUID

	// number is the human-readable order number shown to operators
	number string

	// clientName is the recipient's display name
	clientName string

	// address is the free-form delivery address shown to operators
	address string

	// location is the geocoded drop point
	location kernel.Location

	// price is what the client pays; courier earnings derive from it
	price kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// courierID is the assigned courier's ID (nil while Pending)
	courierID *kernel.UUID

	// rationale records why dispatch chose the courier, if known
	rationale string

	// createdAt is when the order entered the system
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a fresh Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - storeID: Originating store (must be valid UUID)
//   - number: Human-readable order number (must be non-empty)
//   - clientName: Recipient name (must be non-empty)
//   - address: Delivery address (must be non-empty)
//   - location: Geocoded drop point with validated coordinates
//   - price: Order price (zero is allowed for promotional orders)
//   - createdAt: Creation timestamp (must be non-zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor validates all inputs and ensures the order is created
// with Pending status and no courier assigned.
func NewOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	number string,
	clientName string,
	address string,
	location kernel.Location,
	price kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setNumber(number),
		order.setClientName(clientName),
		order.setAddress(address),
		order.setLocation(location),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its status, courier binding and dispatch rationale.
//
// The status/courier pairing is re-validated on restore: a Pending order
// must not carry a courier and a non-Pending order must.
func RestoreOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	number string,
	clientName string,
	address string,
	location kernel.Location,
	price kernel.Money,
	status Status,
	courierID *kernel.UUID,
	rationale string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		price:         price,
		rationale:     rationale,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setNumber(number),
		order.setClientName(clientName),
		order.setAddress(address),
		order.setLocation(location),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		id := *courierID
		order.courierID = &id
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the originating store's identifier.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Number returns the human-readable order number, e.g. "#1042".
func (o *Order) Number() string {
	return o.number
}

// ClientName returns the recipient's display name.
func (o *Order) ClientName() string {
	return o.clientName
}

// Address returns the free-form delivery address.
func (o *Order) Address() string {
	return o.address
}

// Location returns the geocoded drop point.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Price returns the order price.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID.
// Returns nil while the order is Pending.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Rationale returns the dispatch rationale recorded at assignment.
// Empty for manually assigned orders without an explanation.
func (o *Order) Rationale() string {
	return o.rationale
}

// CreatedAt returns when the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Assign binds the order to a courier and moves it to Accepted.
//
// This method enforces the following business rules:
//   - The courier ID must be valid
//   - The order must be Pending; a courier is bound exactly once
//
// Parameters:
//   - courierID: The ID of the courier taking the order
//   - rationale: Why dispatch chose this courier (may be empty for manual picks)
//
// After successful assignment Courier() returns the bound courier and the
// binding never changes for the rest of the order's life.
func (o *Order) Assign(courierID kernel.UUID, rationale string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.rationale = rationale
	return nil
}

// Accept marks the order as picked up by its courier, moving it to InRoute.
// The order must be Accepted.
func (o *Order) Accept() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered.
//
// The order must be InRoute; Delivered is a final state with no further
// transitions.
func (o *Order) Complete() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID sets the order's unique identifier with validation.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

// setStoreID sets the originating store with validation.
func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	o.storeID = storeID
	return nil
}

// setNumber sets the display number with validation.
func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}

	o.number = number
	return nil
}

// setClientName sets the recipient name with validation.
func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	o.clientName = clientName
	return nil
}

// setAddress sets the delivery address with validation.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	o.address = address
	return nil
}

// setLocation sets the drop point with validation.
func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	o.location = location
	return nil
}

// setStatus sets the lifecycle status with validation.
// Used during restoration from persistent storage.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// setCreatedAt sets the creation timestamp with validation.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	o.createdAt = createdAt
	return nil
}
