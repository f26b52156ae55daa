package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
)

// VoiceDispatchResult is the oracle's interpretation of a spoken command.
// Identifiers come back as strings and must be revalidated against live
// state before acting on them.
type VoiceDispatchResult struct {
	// OrderID is the order the command refers to, as the oracle heard it.
	OrderID string
	// CourierID is the courier the command refers to.
	CourierID string
	// Success reports whether the oracle understood the command.
	Success bool
	// Message is the operator-facing explanation, also used on failure.
	Message string
}

// RouteSuggestionResult is the oracle's proposed visiting sequence for a
// courier's in-route orders.
type RouteSuggestionResult struct {
	// OrderedIDs is the proposed visiting sequence of order IDs.
	OrderedIDs []string
	// TotalKm is the oracle's distance estimate for the sequence.
	TotalKm float64
	// TotalMinutes is the oracle's driving time estimate.
	TotalMinutes float64
	// Advice is free-form guidance attached to the route.
	Advice string
}

// RestockForecastItem is the oracle's inventory projection for one product.
type RestockForecastItem struct {
	// ProductID identifies the product, as reported by the oracle.
	ProductID string
	// EstimatedDaysRemaining is the projected days of stock coverage.
	EstimatedDaysRemaining float64
	// RecommendedRestock is the suggested reorder quantity.
	RecommendedRestock int
	// Reasoning explains the projection.
	Reasoning string
}

// DispatchOracle is the gateway to the model-backed assistant that suggests
// assignments, parses voice commands, sequences routes and forecasts
// restocking.
//
// All oracle output is advisory and stringly typed. Callers revalidate every
// identifier inside the command transaction; stale or fabricated suggestions
// are discarded there and replaced by deterministic fallbacks.
type DispatchOracle interface {
	// SuggestAssignment proposes a courier for the order from the given
	// pool of online couriers. Returns the courier's ID as a string.
	SuggestAssignment(ctx context.Context, o *order.Order, pool []*courier.Courier) (string, error)

	// ParseVoiceCommand interprets a spoken operator command against the
	// current pending orders and courier roster.
	ParseVoiceCommand(
		ctx context.Context,
		transcript string,
		pending []*order.Order,
		roster []*courier.Courier,
	) (VoiceDispatchResult, error)

	// SequenceRoute proposes a visiting sequence for the courier's
	// in-route orders.
	SequenceRoute(ctx context.Context, c *courier.Courier, inRoute []*order.Order) (RouteSuggestionResult, error)

	// PredictRestock projects inventory coverage for a store's catalog.
	PredictRestock(ctx context.Context, catalog []*product.Product) ([]RestockForecastItem, error)
}
