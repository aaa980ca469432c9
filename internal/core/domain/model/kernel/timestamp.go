package kernel

import (
	"fmt"
	"time"

	"salesorder/internal/pkg/errs"
	"salesorder/internal/pkg/guard"
)

// timestampDisplayLayout is the human-readable rendering used by Format.
const timestampDisplayLayout = time.RFC1123

// ErrTimestampIsNotConstructed is returned when attempting to use an improperly initialized Timestamp.
// Timestamps must be created using NewTimestamp, NewTimestampNow, or TimestampFromString constructors.
var ErrTimestampIsNotConstructed = errs.NewValueIsRequiredError(
	"timestamp must be created via NewTimestamp, NewTimestampNow, or TimestampFromString constructors")

// Timestamp is an immutable value object wrapping a validated point in time.
// A Timestamp is never zero and never in the future, which makes it suitable
// for recording when business facts happened (an order being placed).
//
// The zero value of Timestamp is invalid and will fail validation - use
// constructors to create instances.
//
// Example:
//
//	orderedAt, err := kernel.NewTimestamp(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(orderedAt.Format()) // Output: Fri, 01 Mar 2024 12:00:00 UTC
type Timestamp struct {
	value time.Time
	guard guard.ConstructorGuard
}

// NewTimestamp creates a Timestamp from the given time.
// The time must not be the zero value and must not be in the future.
//
// Returns:
//   - Timestamp: A valid timestamp instance
//   - error: Validation error if the time is zero or in the future
func NewTimestamp(t time.Time) (Timestamp, error) {
	if t.IsZero() {
		return Timestamp{}, errs.NewValueIsRequiredError("timestamp")
	}

	if t.After(time.Now()) {
		return Timestamp{}, errs.NewValueIsInvalidErrorWithCause("timestamp is invalid",
			fmt.Errorf("%s is in the future", t.Format(time.RFC3339)))
	}

	return Timestamp{
		value: t,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewTimestampNow creates a Timestamp for the current moment.
// The returned timestamp always passes validation.
func NewTimestampNow() Timestamp {
	return Timestamp{
		value: time.Now(),
		guard: guard.NewConstructorGuard(),
	}
}

// TimestampFromString parses a Timestamp from an RFC 3339 string,
// e.g. "2024-03-01T12:00:00Z". The parsed time is subject to the same
// validation as NewTimestamp.
//
// Returns:
//   - Timestamp: A valid timestamp instance
//   - error: Validation error if the string is unparseable, zero, or in the future
func TimestampFromString(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, errs.NewValueIsInvalidErrorWithCause("timestamp is invalid", err)
	}

	return NewTimestamp(t)
}

// Validate checks if the Timestamp was properly constructed using a constructor.
// The zero value of Timestamp is invalid and will fail this validation.
//
// Returns:
//   - error: ErrTimestampIsNotConstructed if the timestamp was not properly initialized, nil otherwise
func (t Timestamp) Validate() error {
	return t.guard.Validate(ErrTimestampIsNotConstructed)
}

// Time returns the underlying time value.
func (t Timestamp) Time() time.Time {
	return t.value
}

// Format returns a human-readable representation of the timestamp,
// e.g. "Fri, 01 Mar 2024 12:00:00 UTC".
func (t Timestamp) Format() string {
	return t.value.Format(timestampDisplayLayout)
}

// String returns the same representation as Format.
// This method implements the fmt.Stringer interface.
func (t Timestamp) String() string {
	return t.Format()
}

// IsEqual compares two timestamps for equality.
// Both timestamps must be properly constructed (pass validation) for the comparison to succeed.
//
// Returns:
//   - bool: true if both timestamps denote the same instant, false otherwise
//   - error: Validation error if either timestamp is improperly constructed
func (t Timestamp) IsEqual(other Timestamp) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return t.value.Equal(other.value), nil
}
