package ports

import (
	"context"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for sales order aggregates.
// Provides methods for storing, retrieving, and querying orders based on
// their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.SalesOrder) error

	// Update persists changes to an existing order aggregate,
	// including any line items appended since it was loaded.
	Update(ctx context.Context, aggregate *order.SalesOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.SalesOrder, error)

	// GetAllInPendingStatus retrieves all orders still awaiting confirmation.
	// Used by the stale order cancellation workflow.
	GetAllInPendingStatus(ctx context.Context) ([]*order.SalesOrder, error)
}
