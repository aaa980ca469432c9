package customer

import (
	"errors"
	"strings"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a party that places sales orders.
// It is an aggregate root holding the customer's identity and a small piece of
// derived state: the total of the customer's most recently shipped order.
//
// Customer does not own orders. Orders reference the customer by ID and live
// in their own aggregate; the only thing written back here is lastOrderTotal,
// updated by the order shipment workflow.
//
// Business rules:
//   - Customer must have a valid UUID and a non-empty name (after trimming)
//   - lastOrderTotal is absent until the first order ships
//   - lastOrderTotal only ever holds a valid Money value
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// lastOrderTotal is the total of the most recently shipped order, nil until one ships
	lastOrderTotal *kernel.Money
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified parameters.
// This is the only way to create a valid fresh Customer instance.
//
// Parameters:
//   - id: Unique identifier for the customer (must be valid UUID)
//   - name: Display name (must be non-empty after trimming)
//
// Returns:
//   - *Customer: A fully initialized customer with no recorded order total
//   - error: Validation error if any parameter is invalid
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage.
// Unlike NewCustomer, it accepts a previously recorded last order total.
// A nil lastOrderTotal means no order has shipped for this customer yet.
//
// This function should be used by repository adapters when rehydrating
// customers to ensure data integrity.
func RestoreCustomer(id kernel.UUID, name string, lastOrderTotal *kernel.Money) (*Customer, error) {
	customer, err := NewCustomer(id, name)
	if err != nil {
		return nil, err
	}

	if lastOrderTotal != nil {
		if err := lastOrderTotal.Validate(); err != nil {
			return nil, err
		}
		total := *lastOrderTotal
		customer.lastOrderTotal = &total
	}

	return customer, nil
}

// IsEqual compares two customers for equality based on their unique identifiers.
// Two customers are considered equal if they have the same ID, regardless of
// other attributes.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Customer was properly constructed using a constructor.
// The zero value of Customer is invalid and will fail this validation.
//
// Returns:
//   - error: ErrCustomerIsNotConstructed if improperly initialized, nil if valid
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the unique identifier of the customer.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// LastOrderTotal returns the total of the most recently shipped order,
// or nil if no order has shipped yet. The returned pointer references a copy,
// so callers cannot mutate the customer through it.
func (c *Customer) LastOrderTotal() *kernel.Money {
	if c.lastOrderTotal == nil {
		return nil
	}
	total := *c.lastOrderTotal
	return &total
}

// RecordOrderTotal stores the total of a newly shipped order, replacing any
// previously recorded value. It is called by the order shipment workflow.
//
// Parameters:
//   - total: The shipped order's total (must be a valid Money value)
//
// Returns:
//   - error: Validation error if the total is invalid; state is unchanged
func (c *Customer) RecordOrderTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.lastOrderTotal = &total
	return nil
}

// setID sets the customer's unique identifier with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName trims and sets the customer's name with validation.
// This is an internal setter used during customer construction.
func (c *Customer) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameIsRequired
	}

	c.name = trimmed
	return nil
}
