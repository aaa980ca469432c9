// Package order contains the SalesOrder aggregate, its line items and the
// order lifecycle state machine.
//
// SalesOrder is the aggregate root. It owns an append-only sequence of
// SalesOrderItem line items, all denominated in the order's single currency,
// and a Status that moves through the Pending -> Confirmed -> Shipped
// workflow with Cancelled reachable from the two non-terminal states.
//
// Items come into existence only through SalesOrder.AddItem and are immutable
// afterwards. Repository adapters rebuild aggregates through RestoreSalesOrder
// and RestoreSalesOrderItem, which re-validate every invariant on the way in.
package order
