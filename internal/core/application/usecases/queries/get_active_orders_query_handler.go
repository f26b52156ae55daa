package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves the dispatch board from the database.
// Delivered orders are excluded; the board only shows work still in flight.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for dispatch board queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all active orders, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			store_id,
			courier_id,
			number,
			client_name,
			address,
			location_lat,
			location_lng,
			price_cents,
			status,
			rationale,
			created_at
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY created_at
	`, int(order.Pending), int(order.Accepted), int(order.InRoute)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id, storeID uuid.UUID
		var courierID *uuid.UUID
		var lat, lng float64
		var status int

		err = rows.Scan(
			&id,
			&storeID,
			&courierID,
			&resp.Number,
			&resp.ClientName,
			&resp.Address,
			&lat,
			&lng,
			&resp.PriceCents,
			&status,
			&resp.Rationale,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		sID, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.StoreID = sID

		if courierID != nil {
			cID, idErr := kernel.UUIDFromBytes(courierID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CourierID = &cID
		}

		location, locErr := kernel.NewLocation(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
