// Package customer contains the Customer aggregate.
//
// A customer is referenced by sales orders but does not own them. The only
// order-derived state kept here is the total of the most recently shipped
// order, written back by the shipment workflow through RecordOrderTotal.
package customer
