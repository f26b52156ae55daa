package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with strictly forward transitions so that
// the operational timeline of an order can never be rewritten.
//
// State transitions:
//
//	Pending ──> Accepted ──> InRoute ──> Delivered
//
// No transition may be skipped or reversed. A courier is bound to the
// order exactly once, at the Pending -> Accepted transition.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be assigned to a courier.
	Pending

	// Accepted indicates the order has been assigned to a courier who
	// has not yet started driving it.
	Accepted

	// InRoute indicates the assigned courier has picked the order up
	// and is on the way to the client.
	InRoute

	// Delivered indicates the order has reached the client.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		InRoute:   "InRoute",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		InRoute:   "InRoute",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, InRoute, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values, so it is safe to call
// on any Status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether the order still occupies its courier.
// Accepted and InRoute orders are active; Pending orders have no courier
// yet and Delivered orders are done.
func (s Status) IsActive() bool {
	return s == Accepted || s == InRoute
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Pending orders must not have a courier assigned
//   - Accepted, InRoute and Delivered orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted
//
// Orders that already belong to a courier cannot be assigned again.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return Accepted, nil
}

// Accept transitions the status to InRoute.
//
// Valid transitions:
//   - Accepted -> InRoute
func (s Status) Accept() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return InRoute, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InRoute -> Delivered
//
// Completing straight from Accepted would skip the drive, which the
// timeline forbids.
func (s Status) Complete() (Status, error) {
	if s != InRoute {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Delivered, nil
}
