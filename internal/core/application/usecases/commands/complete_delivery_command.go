package commands

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand requests the delivery transition for an order:
// mark it Delivered and credit the customer's eco-points reward as one
// atomic unit. This command is the sole entry point to the Delivered
// status and to reward crediting.
//
// Example:
//
//	cmd, err := NewCompleteDeliveryCommand(orderID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order, nothing changed
//	case errors.Is(err, ErrOrderAlreadyDelivered):
//	    // idempotent retry, no double credit
//	case errors.Is(err, ErrOrderTransitionConflict):
//	    // lost a race for this order, safe to retry
//	case err != nil:
//	    // storage failure, fully rolled back, safe to retry
//	}
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete the delivery of
// the identified order.
func NewCompleteDeliveryCommand(orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the order whose delivery is being completed.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
