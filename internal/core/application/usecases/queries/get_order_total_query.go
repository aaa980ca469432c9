package queries

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

var ErrGetOrderTotalQueryIsNotConstructed = errors.New(
	"GetOrderTotalQuery must be created via NewGetOrderTotalQuery constructor",
)

// GetOrderTotalQuery retrieves the current total of a single order.
//
// Example:
//
//	query, err := NewGetOrderTotalQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderTotalQueryHandler(db)
//	total, err := handler.Handle(ctx, query)
type GetOrderTotalQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTotalQuery creates a query for a single order's total.
// Validates that the order identifier is valid.
func NewGetOrderTotalQuery(orderID kernel.UUID) (GetOrderTotalQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTotalQuery{}, err
	}

	return GetOrderTotalQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTotalQueryIsNotConstructed if validation fails.
func (q GetOrderTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalQueryIsNotConstructed)
}

// OrderID returns the identifier of the queried order.
func (q GetOrderTotalQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTotalQueryResponse represents a single order's total read model.
type GetOrderTotalQueryResponse struct {
	OrderID kernel.UUID
	Total   kernel.Money
}
