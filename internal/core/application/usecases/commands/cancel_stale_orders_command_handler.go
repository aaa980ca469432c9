package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler sweeps pending orders that were never
// confirmed within the allowed age and cancels them in a single transaction.
// It is intended to be driven by a background job.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stale order sweep command.
// Loads all pending orders, cancels the ones placed before the cutoff and
// persists them. A sweep that finds nothing to cancel is not an error.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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
	pendingOrders, err := orderRepo.GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-cmd.MaxAge())
	for _, salesOrder := range pendingOrders {
		if !salesOrder.OrderedAt().Time().Before(cutoff) {
			continue
		}

		if err = salesOrder.Cancel(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, salesOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
