package services

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// Dispatch errors.
var (
	// ErrNoEligibleCourier is returned when no courier on the roster can take the order.
	ErrNoEligibleCourier = errors.New("no eligible courier available")
	// ErrCourierNotEligible is returned when the chosen courier's status rules out
	// the assignment for the given source.
	ErrCourierNotEligible = errors.New("courier is not eligible for assignment")
)

// AssignmentSource identifies which channel initiated an assignment.
// Eligibility rules differ per source: an operator may deliberately stack
// orders onto a busy courier, while automated channels only target idle ones.
type AssignmentSource int

const (
	// SourceUnknown represents an invalid or undefined source.
	SourceUnknown AssignmentSource = iota

	// SourceManual is an operator dragging an order onto a courier.
	// Online and Busy couriers are both eligible (multi-drop runs).
	SourceManual

	// SourceVoice is an assignment parsed from a spoken operator command.
	// Only Online couriers are eligible.
	SourceVoice

	// SourceSuggested is an assignment proposed by the dispatch oracle.
	// Only Online couriers are eligible.
	SourceSuggested
)

// String returns the human-readable name of the assignment source.
func (s AssignmentSource) String() string {
	switch s {
	case SourceManual:
		return "Manual"
	case SourceVoice:
		return "Voice"
	case SourceSuggested:
		return "Suggested"
	default:
		return "Unknown"
	}
}

// Dispatcher is a domain service that binds pending orders to couriers.
//
// Key responsibilities:
//   - Enforcing per-source eligibility rules before an assignment
//   - Executing the order/courier state changes as one unit
//   - Selecting a fallback courier by proximity when the oracle has none
//
// Business rules:
//   - Only Pending orders can be assigned
//   - Offline couriers never receive assignments, from any source
//   - Manual assignments may stack onto Busy couriers; voice and suggested
//     assignments require an idle Online courier
//   - Proximity fallback picks the nearest Online courier by great-circle
//     distance, earliest in roster order on ties
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Assign binds the order to the courier on behalf of the given source.
//
// Both aggregates change together: the order moves Pending -> Accepted with
// the courier bound and the rationale recorded, and the courier is marked
// Busy. The caller persists both in one transaction.
//
// Returns ErrCourierNotEligible (wrapped with the courier's status) when the
// source's eligibility rules reject the courier.
func (d Dispatcher) Assign(o *order.Order, c *courier.Courier, source AssignmentSource, rationale string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if err := d.validateEligibility(c, source); err != nil {
		return err
	}

	if err := o.Assign(c.ID(), rationale); err != nil {
		return err
	}

	return c.MarkBusy()
}

// PickNearest selects the Online courier closest to the order's drop point.
//
// Used as the deterministic fallback when the dispatch oracle is unavailable
// or suggests a courier that no longer qualifies. Ties resolve to the courier
// appearing first in the roster slice, which keeps the choice reproducible.
//
// Returns ErrNoEligibleCourier when the roster holds no Online courier.
func (d Dispatcher) PickNearest(o *order.Order, roster []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var (
		best     *courier.Courier
		bestDist = math.MaxFloat64
	)

	for _, c := range roster {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if c.Status() != courier.StatusOnline {
			continue
		}

		dist, err := c.Location().DistanceKmTo(o.Location())
		if err != nil {
			return nil, err
		}

		if dist < bestDist {
			bestDist = dist
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoEligibleCourier
	}

	return best, nil
}

// validateEligibility applies the per-source status rules.
func (d Dispatcher) validateEligibility(c *courier.Courier, source AssignmentSource) error {
	status := c.Status()

	switch source {
	case SourceManual:
		if status == courier.StatusOnline || status == courier.StatusBusy {
			return nil
		}
	case SourceVoice, SourceSuggested:
		if status == courier.StatusOnline {
			return nil
		}
	case SourceUnknown:
	}

	return fmt.Errorf("%w: %s courier via %s assignment", ErrCourierNotEligible, status, source)
}
