package commands

import (
	"context"
)

// UpdateDeliveryDetailsCommandHandler handles changes to an order's
// delivery details. The order aggregate enforces that only Pending orders
// may be edited.
type UpdateDeliveryDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateDeliveryDetailsCommandHandler creates a handler for delivery
// detail updates.
func NewUpdateDeliveryDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateDeliveryDetailsCommandHandler {
	return UpdateDeliveryDetailsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
//
// Failure modes:
//   - errs.ErrObjectNotFound if the order does not exist
//   - order.ErrOrderAlreadyDispatched if the order left Pending
func (h UpdateDeliveryDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryDetailsCommand) error {
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

	// The row lock serializes this update with status transitions, so the
	// Pending check below still holds when the write commits.
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdateDeliveryDetails(cmd.CustomerName(), cmd.DeliveryAddress()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
