// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the sales order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting sales order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Currency   string         `gorm:"type:varchar(3);not null"`
	Status     int            `gorm:"type:int;not null;index"`
	OrderedAt  time.Time      `gorm:"not null"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
// Links to the owning order via foreign key; the unit price amount is stored as
// an exact numeric and denominated in the order's currency.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts a sales order aggregate to its database representation.
// Maps all aggregate entities including line items.
func fromDomain(salesOrder *order.SalesOrder) OrderDTO {
	orderID := salesOrder.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(salesOrder.Items()))

	for _, item := range salesOrder.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: salesOrder.CustomerID().Bytes(),
		Currency:   salesOrder.Currency().String(),
		Status:     int(salesOrder.Status()),
		OrderedAt:  salesOrder.OrderedAt().Time(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a sales order aggregate.
// Reconstructs the complete aggregate including all line items using RestoreSalesOrder.
func toDomain(dto OrderDTO) (*order.SalesOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	currency, err := kernel.CurrencyFromString(dto.Currency)
	if err != nil {
		return nil, err
	}

	orderedAt, err := kernel.NewTimestamp(dto.OrderedAt)
	if err != nil {
		return nil, err
	}

	items := make([]*order.SalesOrderItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto, currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreSalesOrder(id, customerID, currency, orderedAt, order.Status(dto.Status), items)
}

// itemToDomain converts a line item DTO to a domain entity.
// The unit price is rebuilt in the owning order's currency.
func itemToDomain(dto OrderItemDTO, currency kernel.Currency) (*order.SalesOrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreSalesOrderItem(id, orderID, dto.ProductID, dto.Quantity, unitPrice)
}
