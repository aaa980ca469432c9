package queries

import (
	"context"
	"database/sql"

	"salesorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves all customer information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllCustomersQueryHandler(db)
//	query := NewGetAllCustomersQuery()
//
//	customers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get customers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d customers\n", len(customers))
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers.
// Returns a slice of customer read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetAllCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			last_order_amount,
			last_order_currency
		FROM customers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var customerResp GetAllCustomersQueryResponse
		var id uuid.UUID
		var lastOrderAmount decimal.NullDecimal
		var lastOrderCurrency sql.NullString

		err = rows.Scan(
			&id,
			&customerResp.Name,
			&lastOrderAmount,
			&lastOrderCurrency,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customerResp.ID = customerID

		if lastOrderAmount.Valid && lastOrderCurrency.Valid {
			currency, curErr := kernel.CurrencyFromString(lastOrderCurrency.String)
			if curErr != nil {
				return nil, curErr
			}

			total, moneyErr := kernel.NewMoney(lastOrderAmount.Decimal, currency)
			if moneyErr != nil {
				return nil, moneyErr
			}
			customerResp.LastOrderTotal = &total
		}

		customers = append(customers, customerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
