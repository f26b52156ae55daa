package queries

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GetRoutePlanQueryHandler computes the advisory route for a courier's
// in-route orders.
//
// Resolution order:
//  1. The cache, keyed by courier and the exact in-route order set
//  2. The oracle's proposed sequence, revalidated as a permutation of the
//     live order set
//  3. The deterministic nearest-neighbor fallback
//
// Whatever was computed is written back to the cache best-effort.
type GetRoutePlanQueryHandler struct {
	couriers ports.CourierRepository
	orders   ports.OrderRepository
	cache    ports.RoutePlanCache
	oracle   ports.DispatchOracle
	planner  services.RoutePlanner
	log      *slog.Logger
}

// NewGetRoutePlanQueryHandler creates a handler for route plan queries.
// The cache and oracle may be nil; the handler degrades to the
// deterministic fallback.
func NewGetRoutePlanQueryHandler(
	couriers ports.CourierRepository,
	orders ports.OrderRepository,
	cache ports.RoutePlanCache,
	oracle ports.DispatchOracle,
	planner services.RoutePlanner,
	log *slog.Logger,
) (GetRoutePlanQueryHandler, error) {
	if couriers == nil {
		return GetRoutePlanQueryHandler{}, errs.NewValueIsRequiredError("couriers")
	}
	if orders == nil {
		return GetRoutePlanQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}

	return GetRoutePlanQueryHandler{
		couriers: couriers,
		orders:   orders,
		cache:    cache,
		oracle:   oracle,
		planner:  planner,
		log:      log,
	}, nil
}

// Handle resolves the route plan for the queried courier.
func (h GetRoutePlanQueryHandler) Handle(
	ctx context.Context,
	query GetRoutePlanQuery,
) (GetRoutePlanQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRoutePlanQueryResponse{}, err
	}

	c, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return GetRoutePlanQueryResponse{}, err
	}

	inRoute, err := h.orders.GetInRouteByCourier(ctx, c.ID())
	if err != nil {
		return GetRoutePlanQueryResponse{}, err
	}

	if len(inRoute) == 0 {
		return GetRoutePlanQueryResponse{
			CourierID: c.ID(),
			Plan:      services.RoutePlan{Stops: []services.RouteStop{}},
			Source:    RoutePlanSourceFallback,
		}, nil
	}

	orderIDs := make([]kernel.UUID, len(inRoute))
	for i, o := range inRoute {
		orderIDs[i] = o.ID()
	}

	if h.cache != nil {
		plan, cacheErr := h.cache.Get(ctx, c.ID(), orderIDs)
		if cacheErr == nil {
			return GetRoutePlanQueryResponse{
				CourierID: c.ID(),
				Plan:      plan,
				Source:    RoutePlanSourceCache,
			}, nil
		}
	}

	plan, source, err := h.computePlan(ctx, c, inRoute)
	if err != nil {
		return GetRoutePlanQueryResponse{}, err
	}

	if h.cache != nil {
		if cacheErr := h.cache.Put(ctx, c.ID(), orderIDs, plan); cacheErr != nil {
			h.logWarn("route plan cache write failed",
				slog.String("courier_id", c.ID().String()),
				slog.Any("error", cacheErr))
		}
	}

	return GetRoutePlanQueryResponse{
		CourierID: c.ID(),
		Plan:      plan,
		Source:    source,
	}, nil
}

// computePlan tries the oracle sequence first and falls back to the
// deterministic nearest-neighbor plan on any failure, including proposals
// that are not a permutation of the live in-route set.
func (h GetRoutePlanQueryHandler) computePlan(
	ctx context.Context,
	c *courier.Courier,
	inRoute []*order.Order,
) (services.RoutePlan, string, error) {
	if h.oracle != nil {
		suggestion, err := h.oracle.SequenceRoute(ctx, c, inRoute)
		if err == nil {
			proposal, parseErr := parseProposal(suggestion.OrderedIDs)
			if parseErr == nil {
				plan, seqErr := h.planner.Sequence(
					c.Location(), inRoute, proposal, suggestion.Advice)
				if seqErr == nil {
					return plan, RoutePlanSourceOracle, nil
				}
				h.logWarn("oracle route sequence rejected",
					slog.String("courier_id", c.ID().String()),
					slog.Any("error", seqErr))
			} else {
				h.logWarn("oracle route sequence unparsable",
					slog.String("courier_id", c.ID().String()),
					slog.Any("error", parseErr))
			}
		} else {
			h.logWarn("oracle route sequencing failed",
				slog.String("courier_id", c.ID().String()),
				slog.Any("error", err))
		}
	}

	plan, err := h.planner.Plan(c.Location(), inRoute)
	if err != nil {
		return services.RoutePlan{}, "", err
	}

	return plan, RoutePlanSourceFallback, nil
}

// parseProposal converts the oracle's stringly-typed sequence into UUIDs.
func parseProposal(ids []string) ([]kernel.UUID, error) {
	proposal := make([]kernel.UUID, len(ids))
	for i, raw := range ids {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		proposal[i] = id
	}
	return proposal, nil
}

func (h GetRoutePlanQueryHandler) logWarn(msg string, args ...any) {
	if h.log == nil {
		return
	}
	h.log.Warn(msg, args...)
}
