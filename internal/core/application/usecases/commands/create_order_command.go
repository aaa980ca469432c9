package commands

import (
	"errors"
	"strings"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new sales order.
// The customer identifier and currency arrive as raw strings from the
// transport layer; the command normalizes and validates them so handlers
// always work with well-formed kernel values.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, " 1b2e...-uuid ", "usd")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	currency   kernel.Currency

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new sales order.
// The customer identifier is trimmed and must parse as a UUID; a blank value
// fails with a required-value error, an unparseable one with an invalid-value
// error. The currency string is normalized and must name a supported currency.
func NewCreateOrderCommand(orderID kernel.UUID, customerID string, currency string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setCurrency(currency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the parsed identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Currency returns the currency the order's prices will be denominated in.
func (c CreateOrderCommand) Currency() kernel.Currency {
	return c.currency
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	trimmed := strings.TrimSpace(customerID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	parsed, err := kernel.UUIDFromString(trimmed)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid", err)
	}

	c.customerID = parsed
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	parsed, err := kernel.CurrencyFromString(currency)
	if err != nil {
		return err
	}

	c.currency = parsed
	return nil
}
