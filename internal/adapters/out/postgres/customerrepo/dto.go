// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"database/sql"

	"salesorder/internal/core/domain/model/customer"
	"salesorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// The last order total is split into a nullable amount and currency pair;
// both columns are null until the customer's first order ships.
type CustomerDTO struct {
	ID                uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name              string              `gorm:"type:varchar(255);not null"`
	LastOrderAmount   decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	LastOrderCurrency sql.NullString      `gorm:"type:varchar(3)"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}

	if total := aggregate.LastOrderTotal(); total != nil {
		dto.LastOrderAmount = decimal.NewNullDecimal(total.Amount())
		dto.LastOrderCurrency = sql.NullString{String: total.Currency().String(), Valid: true}
	}

	return dto
}

// toDomain converts a database DTO to a customer aggregate using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var lastOrderTotal *kernel.Money
	if dto.LastOrderAmount.Valid && dto.LastOrderCurrency.Valid {
		currency, curErr := kernel.CurrencyFromString(dto.LastOrderCurrency.String)
		if curErr != nil {
			return nil, curErr
		}

		total, moneyErr := kernel.NewMoney(dto.LastOrderAmount.Decimal, currency)
		if moneyErr != nil {
			return nil, moneyErr
		}
		lastOrderTotal = &total
	}

	return customer.RestoreCustomer(id, dto.Name, lastOrderTotal)
}
