package queries

import (
	"errors"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves all registered customers.
//
// Example:
//
//	query := NewGetAllCustomersQuery()
//	handler := NewGetAllCustomersQueryHandler(db)
//
//	customers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get customers: %w", err)
//	}
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCustomersQueryIsNotConstructed if validation fails.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetAllCustomersQueryResponse represents a customer read model.
// LastOrderTotal is nil for customers with no shipped orders yet.
type GetAllCustomersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	LastOrderTotal *kernel.Money
}
