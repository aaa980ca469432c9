package commands

import (
	"context"
)

// AddOrderItemCommandHandler handles appending line items to existing orders.
// The aggregate decides whether its current status still accepts items.
//
// Example:
//
//	handler := NewAddOrderItemCommandHandler(uowFactory)
//	cmd, _ := NewAddOrderItemCommand(orderID, kernel.NewUUID(), "SKU-1", 2, price)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for item addition operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item addition command.
// Loads the order, appends the item through the aggregate and persists the result.
// Fails with errs.ErrObjectNotFound if the order does not exist.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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
	salesOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = salesOrder.AddItem(cmd.ItemID(), cmd.ProductID(), cmd.Quantity(), cmd.UnitPriceAmount()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, salesOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
