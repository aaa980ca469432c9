package commands

import (
	"context"
)

// ShipOrderCommandHandler orchestrates the shipment step of the order workflow.
// Shipping transitions the order to its terminal success state and writes the
// order total back to the customer as their last order total. Both aggregates
// are updated within a single transaction.
//
// Example:
//
//	handler := NewShipOrderCommandHandler(uowFactory)
//	cmd, _ := NewShipOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("shipment failed: %v", err)
//	}
type ShipOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewShipOrderCommandHandler creates a handler for order shipment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewShipOrderCommandHandler(uowFactory UoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order shipment command.
// Loads the order, transitions it to Shipped, computes its total, records the
// total on the ordering customer and persists both aggregates atomically.
// Fails with errs.ErrObjectNotFound if the order or customer does not exist,
// or with a status transition error if the order is not confirmed.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	customerRepo := uow.CustomerRepository()

	salesOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = salesOrder.Ship(); err != nil {
		return err
	}

	total, err := salesOrder.TotalPrice()
	if err != nil {
		return err
	}

	orderingCustomer, err := customerRepo.Get(ctx, salesOrder.CustomerID())
	if err != nil {
		return err
	}

	if err = orderingCustomer.RecordOrderTotal(total); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, salesOrder); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, orderingCustomer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
