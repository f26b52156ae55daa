package services

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// avgCourierSpeedKmh is the assumed urban riding speed used to turn route
// distance into a time estimate.
const avgCourierSpeedKmh = 25.0

// ErrSequenceMismatch is returned when a proposed visiting sequence is not a
// permutation of the courier's active orders. Stale oracle output is the
// usual cause.
var ErrSequenceMismatch = errors.New("sequence does not match the active orders")

// RouteStop is one leg of a planned route.
type RouteStop struct {
	// OrderID identifies the order delivered at this stop.
	OrderID kernel.UUID
	// Number is the order's display number.
	Number string
	// Address is the drop address shown to the courier.
	Address string
	// Location is the geocoded drop point.
	Location kernel.Location
	// LegKm is the distance from the previous point on the route.
	LegKm float64
}

// RoutePlan is an advisory visiting sequence over a courier's active orders.
// Plans never constrain completion order; they only help the courier drive
// less.
type RoutePlan struct {
	// Stops is the proposed visiting sequence.
	Stops []RouteStop
	// TotalKm is the summed leg distance starting from the courier's position.
	TotalKm float64
	// TotalMinutes estimates the driving time at urban speed.
	TotalMinutes float64
	// Advice is optional free-form guidance attached to the plan.
	Advice string
}

// OrderedIDs returns the stop sequence as order IDs.
func (p RoutePlan) OrderedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(p.Stops))
	for i, stop := range p.Stops {
		ids[i] = stop.OrderID
	}
	return ids
}

// RoutePlanner is a domain service that sequences a courier's active orders
// into a driving plan.
//
// Business rules:
//   - No active orders yields an empty plan
//   - A single active order yields the trivial one-stop plan
//   - Multiple orders are sequenced greedily by nearest neighbor from the
//     courier's current position, which is the deterministic fallback when
//     the route oracle is unavailable
//   - Externally proposed sequences are only accepted when they are an exact
//     permutation of the active orders
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// Plan sequences the given active orders by nearest neighbor from start.
func (p RoutePlanner) Plan(start kernel.Location, orders []*order.Order) (RoutePlan, error) {
	if err := start.Validate(); err != nil {
		return RoutePlan{}, err
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return RoutePlan{}, err
		}
	}

	remaining := make([]*order.Order, len(orders))
	copy(remaining, orders)

	sequence := make([]*order.Order, 0, len(remaining))
	position := start

	for len(remaining) > 0 {
		bestIdx := 0
		bestDist, err := position.DistanceKmTo(remaining[0].Location())
		if err != nil {
			return RoutePlan{}, err
		}

		for i := 1; i < len(remaining); i++ {
			dist, err := position.DistanceKmTo(remaining[i].Location())
			if err != nil {
				return RoutePlan{}, err
			}
			if dist < bestDist {
				bestDist = dist
				bestIdx = i
			}
		}

		next := remaining[bestIdx]
		sequence = append(sequence, next)
		position = next.Location()
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return p.buildPlan(start, sequence, "")
}

// Sequence builds a plan following an externally proposed order of visits.
//
// The proposal must reference every active order exactly once; otherwise
// ErrSequenceMismatch is returned and the caller should fall back to Plan.
func (p RoutePlanner) Sequence(
	start kernel.Location,
	orders []*order.Order,
	proposal []kernel.UUID,
	advice string,
) (RoutePlan, error) {
	if err := start.Validate(); err != nil {
		return RoutePlan{}, err
	}
	if len(proposal) != len(orders) {
		return RoutePlan{}, ErrSequenceMismatch
	}

	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return RoutePlan{}, err
		}
		byID[o.ID()] = o
	}

	sequence := make([]*order.Order, 0, len(proposal))
	for _, id := range proposal {
		o, ok := byID[id]
		if !ok {
			return RoutePlan{}, ErrSequenceMismatch
		}
		delete(byID, id)
		sequence = append(sequence, o)
	}

	return p.buildPlan(start, sequence, advice)
}

// buildPlan walks the sequence accumulating leg distances and the time
// estimate.
func (p RoutePlanner) buildPlan(start kernel.Location, sequence []*order.Order, advice string) (RoutePlan, error) {
	plan := RoutePlan{
		Stops:  make([]RouteStop, 0, len(sequence)),
		Advice: advice,
	}

	position := start
	for _, o := range sequence {
		legKm, err := position.DistanceKmTo(o.Location())
		if err != nil {
			return RoutePlan{}, err
		}

		plan.Stops = append(plan.Stops, RouteStop{
			OrderID:  o.ID(),
			Number:   o.Number(),
			Address:  o.Address(),
			Location: o.Location(),
			LegKm:    legKm,
		})
		plan.TotalKm += legKm
		position = o.Location()
	}

	plan.TotalMinutes = plan.TotalKm / avgCourierSpeedKmh * 60
	return plan, nil
}
