package ports

import (
	"context"
	"time"
)

// OrderStatusEvent notifies downstream consumers of an order lifecycle
// change. Published best-effort after the owning transaction commits;
// a publish failure is logged but never fails the command.
type OrderStatusEvent struct {
	// OrderID is the canonical string form of the order's identifier.
	OrderID string `json:"order_id"`
	// Number is the human-readable order number.
	Number string `json:"number"`
	// Status is the lifecycle state after the change.
	Status string `json:"status"`
	// CourierID is the bound courier, empty while Pending.
	CourierID string `json:"courier_id,omitempty"`
	// Source is the assignment channel, set on assignment events only.
	Source string `json:"source,omitempty"`
	// OccurredAt is when the change committed.
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	// PublishOrderStatus publishes a single order status change.
	PublishOrderStatus(ctx context.Context, event OrderStatusEvent) error

	// Close releases the underlying producer.
	Close() error
}
