package order

import (
	"errors"
	"fmt"
	"strings"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a SalesOrderItem instance was not created
// through the newSalesOrderItem factory. This ensures all items are properly validated.
var ErrItemIsNotConstructed = errors.New("SalesOrderItem must be created via SalesOrder.AddItem")

// SalesOrderItem is an immutable line item belonging to a sales order.
// Items are created exactly once, through SalesOrder.AddItem, and are never
// mutated or removed afterwards. The orderID field is a back-reference to the
// owning order; the item does not own or manage the order.
//
// Invariants:
//   - productID is non-empty after trimming
//   - quantity is positive
//   - unitPrice is a valid Money value in the owning order's currency
type SalesOrderItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// orderID references the owning sales order
	orderID kernel.UUID

	// productID identifies the ordered product
	productID string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the price of a single unit, in the order's currency
	unitPrice kernel.Money

	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// newSalesOrderItem creates a validated line item.
// It is unexported on purpose: items only come into existence through
// SalesOrder.AddItem, which supplies a unit price in the order's currency.
func newSalesOrderItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID string,
	quantity int,
	unitPrice kernel.Money,
) (*SalesOrderItem, error) {
	item := &SalesOrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreSalesOrderItem reconstructs a line item from persistent storage.
// It applies the same validation as item creation and is intended for
// repository adapters rebuilding an order aggregate.
func RestoreSalesOrderItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID string,
	quantity int,
	unitPrice kernel.Money,
) (*SalesOrderItem, error) {
	return newSalesOrderItem(id, orderID, productID, quantity, unitPrice)
}

// Validate ensures the SalesOrderItem instance was properly constructed.
//
// Returns:
//   - nil if the item is valid
//   - ErrItemIsNotConstructed if the item was not created via the aggregate
func (i *SalesOrderItem) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}

	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (i *SalesOrderItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning sales order.
func (i *SalesOrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the ordered product's identifier.
func (i *SalesOrderItem) ProductID() string {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *SalesOrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *SalesOrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// ItemPrice returns the line subtotal: unit price multiplied by quantity.
// The calculation is pure and has no side effects.
//
// Example:
//
//	// item with quantity 20 at 50.00 USD
//	subtotal, err := item.ItemPrice()
//	// subtotal = 1000.00 USD, err = nil
func (i *SalesOrderItem) ItemPrice() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return i.unitPrice.Multiply(i.quantity)
}

// setID validates and sets the item's unique identifier.
// This is a private method used only during construction.
func (i *SalesOrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setOrderID validates and sets the owning order's identifier.
// This is a private method used only during construction.
func (i *SalesOrderItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

// setProductID trims and sets the product identifier.
// The trimmed identifier must be non-empty.
// This is a private method used only during construction.
func (i *SalesOrderItem) setProductID(productID string) error {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = trimmed
	return nil
}

// setQuantity validates and sets the quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (i *SalesOrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the unit price.
// This is a private method used only during construction.
func (i *SalesOrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
