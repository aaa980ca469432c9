package queries

import (
	"context"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderTotalQueryHandler retrieves a single order's total from the database.
// The total is aggregated in SQL instead of rehydrating the aggregate.
type GetOrderTotalQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTotalQueryHandler creates a handler for order total queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTotalQueryHandler(db *gorm.DB) GetOrderTotalQueryHandler {
	return GetOrderTotalQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's total.
// Returns an ObjectNotFoundError if the order does not exist.
func (h GetOrderTotalQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalQuery,
) (GetOrderTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.currency,
			COALESCE(SUM(i.quantity * i.unit_price), 0) AS total
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.id = ?
		GROUP BY o.currency
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderTotalQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderTotalQueryResponse{}, err
		}
		return GetOrderTotalQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var currency string
	var total decimal.Decimal
	if err = rows.Scan(&currency, &total); err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	orderCurrency, err := kernel.CurrencyFromString(currency)
	if err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	orderTotal, err := kernel.NewMoney(total, orderCurrency)
	if err != nil {
		return GetOrderTotalQueryResponse{}, err
	}

	return GetOrderTotalQueryResponse{
		OrderID: query.OrderID(),
		Total:   orderTotal,
	}, nil
}
