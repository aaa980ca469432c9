package kernel

import (
	"errors"
	"fmt"

	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney or NewZeroMoney constructors to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewZeroMoney constructors")

// Money is an immutable value object pairing a decimal amount with a currency.
// Arithmetic never crosses currencies: Add fails with a CurrencyMismatchError
// when the operands are denominated differently, and no operation coerces or
// converts amounts.
//
// The zero value of Money is invalid and will fail validation - use constructors
// to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(100), kernel.USD)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: 100.00 USD
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value with the specified amount and currency.
// The amount must not be negative and the currency must be a supported code.
//
// Parameters:
//   - amount: The monetary amount (must be >= 0)
//   - currency: The currency the amount is denominated in
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative or the currency is invalid
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(money.setAmount(amount), money.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return money, nil
}

// NewZeroMoney creates a Money value of zero in the specified currency.
// It is the identity element for Add and the starting point for totals.
func NewZeroMoney(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
//
// Returns:
//   - error: ErrMoneyIsNotConstructed if the money was not properly initialized, nil otherwise
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency the amount is denominated in.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two Money values in the shared currency.
// Both values must be properly constructed, and their currencies must match;
// a CurrencyMismatchError is returned otherwise and no coercion is attempted.
//
// Parameters:
//   - other: The Money value to add
//
// Returns:
//   - Money: The sum, in the shared currency
//   - error: Validation error or CurrencyMismatchError
//
// Example:
//
//	a, _ := kernel.NewMoney(decimal.NewFromInt(200), kernel.USD)
//	b, _ := kernel.NewMoney(decimal.NewFromInt(1000), kernel.USD)
//	sum, err := a.Add(b)
//	// sum = 1200.00 USD, err = nil
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, errs.NewCurrencyMismatchError(m.currency.String(), other.currency.String())
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply returns the Money value scaled by an integer factor.
// The receiver must be properly constructed. The currency is unchanged.
//
// Example:
//
//	unitPrice, _ := kernel.NewMoney(decimal.NewFromInt(50), kernel.USD)
//	subtotal, err := unitPrice.Multiply(20)
//	// subtotal = 1000.00 USD, err = nil
func (m Money) Multiply(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))), m.currency)
}

// IsEqual compares two Money values for equality.
// Two values are equal when their amounts are numerically equal and their
// currencies match. Both values must be properly constructed.
//
// Returns:
//   - bool: true if the values are equal, false otherwise
//   - error: Validation error if either value is improperly constructed
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.currency == other.currency && m.amount.Equal(other.amount), nil
}

// String returns a human-readable representation of the Money value.
// The format is "<amount> <currency>" with two fraction digits, e.g. "1200.00 USD".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// setAmount sets the amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Pointer receivers on these private setters enable self-encapsulated validation
// during object construction.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is negative", amount))
	}

	m.amount = amount
	return nil
}

// setCurrency sets the currency with validation.
func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	m.currency = currency
	return nil
}
