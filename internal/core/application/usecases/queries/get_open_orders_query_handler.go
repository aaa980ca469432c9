package queries

import (
	"context"
	"time"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves non-terminal orders from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; order
// totals are aggregated in the database instead of rehydrating aggregates.
//
// Example:
//
//	handler := NewGetOpenOrdersQueryHandler(db)
//	query := NewGetOpenOrdersQuery()
//
//	openOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders.
// Returns orders in Pending or Confirmed status with their current totals,
// sorted by placement time. Converts database types to domain types.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.currency,
			o.status,
			o.ordered_at,
			COALESCE(SUM(i.quantity * i.unit_price), 0) AS total
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status IN (?, ?)
		GROUP BY o.id, o.customer_id, o.currency, o.status, o.ordered_at
		ORDER BY o.ordered_at
	`, order.Pending, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOpenOrdersQueryResponse
		var id, customerID uuid.UUID
		var currency string
		var status int
		var orderedAt time.Time
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&customerID,
			&currency,
			&status,
			&orderedAt,
			&total,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = ownerID

		orderCurrency, curErr := kernel.CurrencyFromString(currency)
		if curErr != nil {
			return nil, curErr
		}

		orderTotal, moneyErr := kernel.NewMoney(total, orderCurrency)
		if moneyErr != nil {
			return nil, moneyErr
		}
		orderResp.Total = orderTotal

		orderResp.Status = order.Status(status).String()

		placedAt, tsErr := kernel.NewTimestamp(orderedAt)
		if tsErr != nil {
			return nil, tsErr
		}
		orderResp.OrderedAt = placedAt

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
