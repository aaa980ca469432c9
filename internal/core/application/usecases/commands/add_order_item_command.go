package commands

import (
	"errors"
	"strings"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddOrderItemCommandIsNotConstructed = errors.New(
		"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("product id is required")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
	ErrUnitPriceIsInvalid  = errors.New("unit price must not be negative")
)

// AddOrderItemCommand represents a request to append a line item to an order.
// The unit price amount is interpreted in the order's own currency.
//
// Example:
//
//	cmd, err := NewAddOrderItemCommand(orderID, kernel.NewUUID(), "SKU-1", 2, decimal.RequireFromString("100.00"))
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	itemID          kernel.UUID
	productID       string
	quantity        int
	unitPriceAmount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to append a line item.
// Validates that both identifiers are valid, the product id is non-blank,
// the quantity is positive and the unit price amount is not negative.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	productID string,
	quantity int,
	unitPriceAmount decimal.Decimal,
) (AddOrderItemCommand, error) {
	itemCommand := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItemID(itemID),
		itemCommand.setProductID(productID),
		itemCommand.setQuantity(quantity),
		itemCommand.setUnitPriceAmount(unitPriceAmount),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderItemCommandIsNotConstructed if validation fails.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the item.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier for the new line item.
func (c AddOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductID returns the ordered product's identifier.
func (c AddOrderItemCommand) ProductID() string {
	return c.productID
}

// Quantity returns the number of units ordered.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// UnitPriceAmount returns the price of a single unit in the order's currency.
func (c AddOrderItemCommand) UnitPriceAmount() decimal.Decimal {
	return c.unitPriceAmount
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddOrderItemCommand) setUnitPriceAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrUnitPriceIsInvalid
	}

	c.unitPriceAmount = amount
	return nil
}
