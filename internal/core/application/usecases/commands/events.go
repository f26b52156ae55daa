package commands

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// publishOrderStatus publishes the order's lifecycle change best-effort.
// Runs after the owning transaction commits: a broker outage must never
// fail the command, so errors are only logged.
func publishOrderStatus(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	o *order.Order,
	source string,
) {
	if publisher == nil {
		return
	}

	event := ports.OrderStatusEvent{
		OrderID:    o.ID().String(),
		Number:     o.Number(),
		Status:     o.Status().String(),
		Source:     source,
		OccurredAt: time.Now().UTC(),
	}
	if courierID := o.Courier(); courierID != nil {
		event.CourierID = courierID.String()
	}

	if err := publisher.PublishOrderStatus(ctx, event); err != nil && logger != nil {
		logger.Warn("order status event publish failed",
			"order_id", event.OrderID,
			"status", event.Status,
			"error", err)
	}
}
