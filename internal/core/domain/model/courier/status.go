package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the availability state of a courier.
// It implements a state machine with defined transitions so that
// dispatching only ever targets couriers who can actually work.
//
// State transitions:
//
//	Offline ──> Online ──> Busy ──> Online
//	   ^          │          │
//	   └──────────┴──────────┘
//	      (going off shift is always allowed)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOffline means the courier is off shift and must not receive
	// new assignments. A courier may be offline while still carrying
	// orders accepted earlier in the shift.
	StatusOffline

	// StatusOnline means the courier is on shift and idle, eligible for
	// any assignment source.
	StatusOnline

	// StatusBusy means the courier is carrying at least one active order.
	// Busy couriers can still take manual assignments (multi-drop runs).
	StatusBusy
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		StatusOffline: "Offline",
		StatusOnline:  "Online",
		StatusBusy:    "Busy",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOffline: "Offline",
		StatusOnline:  "Online",
		StatusBusy:    "Busy",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Offline, Online, Busy.
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

// GoOnline transitions the status to Online.
//
// Valid transitions:
//   - Offline -> Online (start of shift)
//   - Online -> Online (idempotent toggle)
//
// A Busy courier cannot be put back on the idle roster directly; active
// orders must be completed first (see Release).
func (s Status) GoOnline() (Status, error) {
	if s != StatusOffline && s != StatusOnline {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to go online from", s.String()),
		)
	}
	return StatusOnline, nil
}

// GoOffline transitions the status to Offline.
//
// Going off shift is allowed from any valid status, including Busy: a
// courier mid-route keeps their active orders but stops receiving new
// ones. Completing those orders will not put them back online.
func (s Status) GoOffline() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	return StatusOffline, nil
}

// MarkBusy transitions the status to Busy upon taking an order.
//
// Valid transitions:
//   - Online -> Busy (first active order)
//   - Busy -> Busy (another order stacked onto an active run)
//
// Offline couriers must not be marked busy; dispatch rejects them earlier.
func (s Status) MarkBusy() (Status, error) {
	if s != StatusOnline && s != StatusBusy {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to mark busy", s.String()),
		)
	}
	return StatusBusy, nil
}

// Release transitions Busy back to Online after the last active order
// completes. Any other status is left unchanged: a courier who went
// offline mid-route stays offline.
func (s Status) Release() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s == StatusBusy {
		return StatusOnline, nil
	}
	return s, nil
}
