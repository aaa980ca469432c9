package order

import (
	"fmt"

	"salesorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped
//	   │            │
//	   └────────────┴──> Cancelled
//
// Shipped and Cancelled are terminal states. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status accept new line items and await confirmation.
	Pending

	// Confirmed indicates the order has been confirmed.
	// Line items may still be appended until the order ships or is cancelled.
	Confirmed

	// Shipped indicates the order has been shipped.
	// This is the terminal success state with no further transitions allowed.
	Shipped

	// Cancelled indicates the order has been cancelled.
	// This is the terminal failure state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Shipped, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending", "Confirmed", "Shipped", or "Cancelled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAddItem checks if the status allows appending line items
// without performing any transition.
//
// Items may be added in Pending and - deliberately - in Confirmed: only the
// terminal states Shipped and Cancelled freeze the item list. Do not tighten
// this guard without a matching workflow change.
//
// Returns:
//   - nil if items may be appended in the current status
//   - error naming the current status if appending is not allowed
func (s Status) ValidateAddItem() error {
	if s == Shipped || s == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to add items", s.String()),
		)
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other current status (including Confirmed itself) is rejected with an
// error that names the current status and the attempted action.
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by SalesOrder.Confirm() to enforce state transitions.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
//
// Invalid transitions:
//   - Pending -> Shipped (must be confirmed first)
//   - Shipped -> Shipped (already shipped)
//   - Cancelled -> Shipped (cancelled orders never ship)
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by SalesOrder.Ship() to enforce state transitions.
// Shipped is a terminal state with no further transitions possible.
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// Invalid transitions:
//   - Shipped -> Cancelled (shipped orders cannot be recalled)
//   - Cancelled -> Cancelled (already cancelled)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by SalesOrder.Cancel() to enforce state transitions.
// Cancelled is a terminal state with no further transitions possible.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
