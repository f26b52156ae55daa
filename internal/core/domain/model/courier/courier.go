package courier

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrAdvancePending is returned when requesting an advance while another request awaits resolution.
	ErrAdvancePending = errors.New("an advance request is already pending")
	// ErrAdvanceExceedsBalance is returned when an advance amount is larger than the wallet balance.
	ErrAdvanceExceedsBalance = errors.New("advance exceeds wallet balance")
	// ErrNoAdvancePending is returned when resolving an advance that was never requested.
	ErrNoAdvancePending = errors.New("no advance request is pending")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that manages courier identity, availability,
// position, and the earnings wallet.
//
// Key responsibilities:
//   - Managing courier identity (ID, name) and compensation policy
//   - Tracking availability through the shift state machine (Offline/Online/Busy)
//   - Tracking the courier's live position on the map
//   - Crediting delivery earnings and handling wallet advance requests
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, valid location and pay policy
//   - A new courier starts off shift with an empty wallet
//   - At most one advance request may be pending at a time
//   - An advance can never exceed the wallet balance, at request and at approval
//
// Example usage:
//
//	location, _ := kernel.NewLocation(-23.5616, -46.6560)
//	policy, _ := NewPercentagePayPolicy(10)
//	courier, err := NewCourier(kernel.NewUUID(), "Ana Souza", location, policy)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Courier is ready to go on shift and take orders
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// location is the courier's last known position
	location kernel.Location
	// status is the courier's availability state
	status Status
	// payPolicy determines how the courier earns from deliveries
	payPolicy PayPolicy
	// wallet is the accumulated earnings balance
	wallet kernel.Money
	// pendingAdvance is the single outstanding advance request, if any
	pendingAdvance *kernel.Money
	// lastAdvanceAt records when the last advance request was made
	lastAdvanceAt *time.Time
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a fresh Courier instance.
//
// The courier starts Offline with a zero wallet and no pending advance;
// a shift toggle is required before they can receive assignments.
//
// Parameters:
//   - id: Unique identifier for the courier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - location: Initial position on the map (must be valid location)
//   - payPolicy: Compensation scheme (must be constructed)
//
// Returns:
//   - *Courier: A fully initialized courier ready for operations
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewCourier(id kernel.UUID, name string, location kernel.Location, payPolicy PayPolicy) (*Courier, error) {
	courier := &Courier{
		status: StatusOffline,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setLocation(location),
		courier.setPayPolicy(payPolicy),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier which creates fresh off-shift couriers, this constructor
// restores a courier to its previously persisted state, including status,
// wallet balance and any pending advance request.
//
// The restored courier behaves identically to one created through normal
// domain operations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	location kernel.Location,
	status Status,
	payPolicy PayPolicy,
	wallet kernel.Money,
	pendingAdvance *kernel.Money,
	lastAdvanceAt *time.Time,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setLocation(location),
		courier.setStatus(status),
		courier.setPayPolicy(payPolicy),
	); err != nil {
		return nil, err
	}

	courier.wallet = wallet
	if pendingAdvance != nil {
		advance := *pendingAdvance
		courier.pendingAdvance = &advance
	}
	if lastAdvanceAt != nil {
		at := *lastAdvanceAt
		courier.lastAdvanceAt = &at
	}

	return courier, nil
}

// IsEqual compares two couriers for equality based on their unique identifiers.
// Two couriers are considered equal if they have the same ID, regardless of
// other attributes.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed using a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Location returns the courier's last known position.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// Status returns the courier's availability state.
func (c *Courier) Status() Status {
	return c.status
}

// PayPolicy returns the courier's compensation scheme.
func (c *Courier) PayPolicy() PayPolicy {
	return c.payPolicy
}

// Wallet returns the courier's accumulated earnings balance.
func (c *Courier) Wallet() kernel.Money {
	return c.wallet
}

// PendingAdvance returns a copy of the outstanding advance request, or nil
// when none is pending.
func (c *Courier) PendingAdvance() *kernel.Money {
	if c.pendingAdvance == nil {
		return nil
	}
	advance := *c.pendingAdvance
	return &advance
}

// LastAdvanceAt returns when the courier last requested an advance, or nil
// if they never did.
func (c *Courier) LastAdvanceAt() *time.Time {
	if c.lastAdvanceAt == nil {
		return nil
	}
	at := *c.lastAdvanceAt
	return &at
}

// GoOnline puts the courier on shift, making them eligible for assignments.
// Fails if the courier is Busy; active orders must complete first.
func (c *Courier) GoOnline() error {
	if err := c.Validate(); err != nil {
		return err
	}

	status, err := c.status.GoOnline()
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

// GoOffline takes the courier off shift. Allowed from any status: a Busy
// courier keeps their active orders but stops receiving new ones, and
// completing those orders will not put them back on the roster.
func (c *Courier) GoOffline() error {
	if err := c.Validate(); err != nil {
		return err
	}

	status, err := c.status.GoOffline()
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

// MarkBusy records that the courier has taken an order. Valid while Online
// (first order) or already Busy (an order stacked onto an active run).
func (c *Courier) MarkBusy() error {
	if err := c.Validate(); err != nil {
		return err
	}

	status, err := c.status.MarkBusy()
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

// Release returns a Busy courier to the idle roster after their last active
// order completes. A courier who went offline mid-route stays offline.
func (c *Courier) Release() error {
	if err := c.Validate(); err != nil {
		return err
	}

	status, err := c.status.Release()
	if err != nil {
		return err
	}

	c.status = status
	return nil
}

// MoveTo overwrites the courier's position with a new one. Positions are
// reported frequently, so only the location itself is validated.
func (c *Courier) MoveTo(location kernel.Location) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setLocation(location)
}

// Rename changes the courier's display name.
func (c *Courier) Rename(name string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setName(name)
}

// ChangePayPolicy switches the courier to a new compensation scheme.
// Takes effect for deliveries completed after the change; already credited
// earnings are untouched.
func (c *Courier) ChangePayPolicy(payPolicy PayPolicy) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setPayPolicy(payPolicy)
}

// Credit adds a delivery's earnings to the wallet.
//
// The amount is computed by the caller via PayPolicy.Earnings so that the
// credit and the order completion commit in the same transaction.
func (c *Courier) Credit(amount kernel.Money) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.wallet = c.wallet.Add(amount)
	return nil
}

// RequestAdvance files an advance request against the wallet balance.
//
// Business rules:
//   - Only one request may be pending at a time (ErrAdvancePending)
//   - The amount must be positive
//   - The amount must not exceed the current balance (ErrAdvanceExceedsBalance)
//
// The wallet is not debited here; the debit happens on approval, where the
// balance is checked again.
func (c *Courier) RequestAdvance(amount kernel.Money, now time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.pendingAdvance != nil {
		return ErrAdvancePending
	}
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount")
	}
	if amount.GreaterThan(c.wallet) {
		return ErrAdvanceExceedsBalance
	}

	c.pendingAdvance = &amount
	c.lastAdvanceAt = &now
	return nil
}

// ApproveAdvance settles the pending advance request by debiting the wallet.
//
// The balance is re-checked at approval time: earnings credited between
// request and approval can only grow the balance, but a concurrent approval
// must never drive the wallet negative.
func (c *Courier) ApproveAdvance() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.pendingAdvance == nil {
		return ErrNoAdvancePending
	}
	if c.pendingAdvance.GreaterThan(c.wallet) {
		return ErrAdvanceExceedsBalance
	}

	wallet, err := c.wallet.Sub(*c.pendingAdvance)
	if err != nil {
		return err
	}

	c.wallet = wallet
	c.pendingAdvance = nil
	return nil
}

// DenyAdvance discards the pending advance request, leaving the wallet
// untouched. The courier may file a new request afterwards.
func (c *Courier) DenyAdvance() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.pendingAdvance == nil {
		return ErrNoAdvancePending
	}

	c.pendingAdvance = nil
	return nil
}

// setID sets the courier's unique identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setLocation sets the courier's position with validation.
// Used during construction and position overwrites.
func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

// setStatus sets the courier's availability state with validation.
// Used during restoration from persistent storage.
func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// setPayPolicy sets the courier's compensation scheme with validation.
func (c *Courier) setPayPolicy(payPolicy PayPolicy) error {
	if err := payPolicy.Validate(); err != nil {
		return err
	}

	c.payPolicy = payPolicy
	return nil
}
