package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreDemandQueryHandler aggregates order demand per linked store.
type GetStoreDemandQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreDemandQueryHandler creates a handler for store demand queries.
func NewGetStoreDemandQueryHandler(db *gorm.DB) GetStoreDemandQueryHandler {
	return GetStoreDemandQueryHandler{db: db}
}

// Handle executes the query, counting pending and assigned orders per
// linked store. Stores without any orders still appear with zero counts.
func (h GetStoreDemandQueryHandler) Handle(
	ctx context.Context,
	query GetStoreDemandQuery,
) ([]GetStoreDemandQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	demand := make([]GetStoreDemandQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			COUNT(o.id) FILTER (WHERE o.status = ?) AS pending_orders,
			COUNT(o.id) FILTER (WHERE o.status IN (?, ?)) AS active_orders
		FROM stores s
		LEFT JOIN orders o ON o.store_id = s.id
		WHERE s.linked
		GROUP BY s.id, s.name
		ORDER BY s.name
	`, int(order.Pending), int(order.Accepted), int(order.InRoute)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStoreDemandQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.PendingOrders,
			&resp.ActiveOrders,
		)
		if err != nil {
			return nil, err
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.StoreID = storeID

		demand = append(demand, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return demand, nil
}
