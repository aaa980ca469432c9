package order

import (
	"errors"
	"fmt"

	"salesorder/internal/core/domain/model/kernel"
	"salesorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrSalesOrderIsNotConstructed is returned when a SalesOrder instance was not created through
	// the NewSalesOrder factory method. This ensures all orders are properly validated.
	ErrSalesOrderIsNotConstructed = errors.New("SalesOrder must be created via NewSalesOrder constructor")
)

// SalesOrder represents a customer's sales order. It is the aggregate root that
// owns an ordered, append-only sequence of line items and a lifecycle state
// machine; all consistency-guarded mutations flow through it.
//
// SalesOrder follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Currency is fixed at creation; every item's unit price is denominated in it
//   - orderedAt is a validated timestamp, never in the future
//   - Items can only be appended while the status allows it (not Shipped/Cancelled)
//   - Status transitions follow the Pending -> Confirmed -> Shipped workflow,
//     with Cancelled reachable from Pending or Confirmed
//   - Can only be created through NewSalesOrder or RestoreSalesOrder
//
// Mutations are committed only after all validation for the operation succeeds,
// so a failed operation never leaves the aggregate half-mutated. The aggregate
// performs no internal synchronization; concurrent writers must serialize
// access externally (one exclusive owner per order instance).
type SalesOrder struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer (relation only, no ownership)
	customerID kernel.UUID

	// currency is the denomination of every unit price on this order
	currency kernel.Currency

	// orderedAt is the moment the order was placed
	orderedAt kernel.Timestamp

	// items is the append-only sequence of line items
	items []*SalesOrderItem

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewSalesOrder creates a new SalesOrder instance with validation. This is the
// primary way to create a valid order, ensuring all business invariants are
// maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the ordering customer (must be valid UUID)
//   - currency: The currency all item prices will be denominated in
//   - orderedAt: When the order was placed (validated, never in the future)
//
// Returns:
//   - *SalesOrder: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor validates all inputs and ensures the order is created in
// Pending status with no items.
func NewSalesOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	currency kernel.Currency,
	orderedAt kernel.Timestamp,
) (*SalesOrder, error) {
	salesOrder := &SalesOrder{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		salesOrder.setID(id),
		salesOrder.setCustomerID(customerID),
		salesOrder.setCurrency(currency),
		salesOrder.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return salesOrder, nil
}

// RestoreSalesOrder reconstructs a SalesOrder aggregate from persistent storage.
// Unlike NewSalesOrder, which always starts in Pending with no items, this
// constructor accepts a persisted status and item sequence. All invariants are
// re-validated: the status must be valid, every item must belong to the order,
// and every item's unit price must be denominated in the order's currency.
//
// This method should be used by repository adapters when rehydrating orders
// to ensure data integrity.
func RestoreSalesOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	currency kernel.Currency,
	orderedAt kernel.Timestamp,
	status Status,
	items []*SalesOrderItem,
) (*SalesOrder, error) {
	salesOrder, err := NewSalesOrder(id, customerID, currency, orderedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	salesOrder.status = status

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}

		if !item.OrderID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause("item is invalid",
				fmt.Errorf("item %s belongs to order %s, not %s", item.ID(), item.OrderID(), id))
		}

		if item.UnitPrice().Currency() != currency {
			return nil, errs.NewCurrencyMismatchError(currency.String(), item.UnitPrice().Currency().String())
		}
	}
	salesOrder.items = items

	return salesOrder, nil
}

// Validate ensures the SalesOrder instance was properly constructed through
// one of the constructors. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrSalesOrderIsNotConstructed otherwise
func (o *SalesOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrSalesOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *SalesOrder) IsEqual(other *SalesOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *SalesOrder) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *SalesOrder) CustomerID() kernel.UUID {
	return o.customerID
}

// Currency returns the currency all item prices are denominated in.
func (o *SalesOrder) Currency() kernel.Currency {
	return o.currency
}

// OrderedAt returns when the order was placed.
func (o *SalesOrder) OrderedAt() kernel.Timestamp {
	return o.orderedAt
}

// Status returns the current status of the order.
func (o *SalesOrder) Status() Status {
	return o.status
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; appending to it does not affect the order.
func (o *SalesOrder) Items() []*SalesOrderItem {
	items := make([]*SalesOrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends a new immutable line item to the order.
//
// This method enforces the following business rules:
//   - Items cannot be added once the order is Shipped or Cancelled
//     (they can still be added while Confirmed; see Status.ValidateAddItem)
//   - The product identifier must be non-empty after trimming
//   - The quantity must be positive
//   - The unit price is constructed in the order's own currency from the
//     given amount, so items can never carry a foreign denomination
//
// Parameters:
//   - itemID: Unique identifier for the new line item
//   - productID: Identifier of the ordered product
//   - quantity: Number of units (must be positive)
//   - unitPriceAmount: Price of a single unit, in the order's currency
//
// Returns:
//   - nil on success; the item count grows by exactly one and the status
//     is left unchanged
//   - error if validation fails; the item sequence is left untouched
func (o *SalesOrder) AddItem(
	itemID kernel.UUID,
	productID string,
	quantity int,
	unitPriceAmount decimal.Decimal,
) error {
	if err := o.status.ValidateAddItem(); err != nil {
		return err
	}

	unitPrice, err := kernel.NewMoney(unitPriceAmount, o.currency)
	if err != nil {
		return err
	}

	item, err := newSalesOrderItem(itemID, o.id, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// TotalPrice returns the total price of the order: the sum of every line
// item's subtotal (quantity x unit price), starting from a zero amount in the
// order's currency. The calculation is pure and does not mutate the order.
//
// A CurrencyMismatchError from the underlying Money arithmetic is propagated
// unchanged. Given AddItem's construction invariant it should never occur,
// but the aggregation never silently coerces currencies.
//
// Example:
//
//	// order in USD with items (qty 2 x 100.00) and (qty 20 x 50.00)
//	total, err := salesOrder.TotalPrice()
//	// total = 1200.00 USD, err = nil
func (o *SalesOrder) TotalPrice() (kernel.Money, error) {
	total, err := kernel.NewZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		itemPrice, priceErr := item.ItemPrice()
		if priceErr != nil {
			return kernel.Money{}, priceErr
		}

		total, err = total.Add(itemPrice)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// Confirm transitions the order from Pending to Confirmed.
//
// Returns:
//   - nil on successful confirmation
//   - error naming the current status if the order is not Pending;
//     the status is left unchanged
func (o *SalesOrder) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship transitions the order from Confirmed to Shipped.
// Shipped is the terminal success state; no further transitions are possible.
//
// Returns:
//   - nil on successful shipment
//   - error naming the current status if the order is not Confirmed;
//     the status is left unchanged
func (o *SalesOrder) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled from Pending or Confirmed.
// Cancelled is the terminal failure state; no further transitions are possible.
//
// Returns:
//   - nil on successful cancellation
//   - error naming the current status if the order is already Shipped or
//     Cancelled; the status is left unchanged
func (o *SalesOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// FormattedOrderedAt returns the order's placement time as a human-readable
// string. It delegates entirely to the Timestamp value object.
func (o *SalesOrder) FormattedOrderedAt() string {
	return o.orderedAt.Format()
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *SalesOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
// This is a private method used only during construction.
func (o *SalesOrder) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setCurrency validates and sets the order's currency.
// This is a private method used only during construction.
func (o *SalesOrder) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

// setOrderedAt validates and sets the placement time.
// This is a private method used only during construction.
func (o *SalesOrder) setOrderedAt(orderedAt kernel.Timestamp) error {
	if err := orderedAt.Validate(); err != nil {
		return err
	}
	o.orderedAt = orderedAt
	return nil
}
