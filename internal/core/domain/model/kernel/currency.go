package kernel

import (
	"fmt"
	"strings"

	"salesorder/internal/pkg/errs"
)

// Currency is a validated ISO 4217 currency code.
// It is a value object: two Currency values are equal when their codes are equal.
// The zero value ("") is invalid; use one of the declared constants or
// CurrencyFromString for codes coming from external sources.
type Currency string

const (
	// USD is the United States dollar.
	USD Currency = "USD"
	// EUR is the euro.
	EUR Currency = "EUR"
	// GBP is the pound sterling.
	GBP Currency = "GBP"
	// JPY is the Japanese yen.
	JPY Currency = "JPY"
	// RUB is the Russian ruble.
	RUB Currency = "RUB"
)

// getValidCurrencies returns the set of supported currency codes.
// Only codes in this set pass validation.
func getValidCurrencies() map[Currency]struct{} {
	return map[Currency]struct{}{
		USD: {},
		EUR: {},
		GBP: {},
		JPY: {},
		RUB: {},
	}
}

// CurrencyFromString parses a currency code from its string representation.
// The code is trimmed and upper-cased before validation, so " usd " parses to USD.
//
// Returns:
//   - Currency: the validated currency
//   - error: a ValueIsInvalidError if the code is not supported
func CurrencyFromString(s string) (Currency, error) {
	currency := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if err := currency.Validate(); err != nil {
		return "", err
	}
	return currency, nil
}

// Validate checks if the Currency value is one of the supported codes.
//
// Returns:
//   - nil if the currency is valid
//   - error with details if the currency is invalid
//
// This method is used to ensure Currency values from external sources
// (e.g., database, API) are valid before use.
func (c Currency) Validate() error {
	if _, ok := getValidCurrencies()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("currency is invalid",
			fmt.Errorf("%q is not a supported currency code", string(c)))
	}
	return nil
}

// String returns the currency code.
// This method implements the fmt.Stringer interface.
func (c Currency) String() string {
	return string(c)
}
