package commands

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/order"
	"grabee/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
	// ErrDeliveredNotAllowedHere is returned when a caller tries to reach
	// Delivered through the plain status update. Completing a delivery
	// carries reward semantics and must go through CompleteDeliveryCommand.
	ErrDeliveredNotAllowedHere = errors.New(
		"Delivered must be reached via CompleteDeliveryCommand, not a status update",
	)
)

// AdvanceOrderStatusCommand advances an order one step along the delivery
// sequence: Pending -> Accepted (vendor accepts) or Accepted -> PickedUp
// (rider collects). These transitions are status-only and carry no reward
// semantics.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to move an order to the
// target status. Accepted and PickedUp are the only permitted targets;
// Delivered is rejected here so the reward-crediting path stays the sole
// entry point for completion.
func NewAdvanceOrderStatusCommand(orderID kernel.UUID, target order.Status) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == order.Delivered {
		return ErrDeliveredNotAllowedHere
	}
	if target == order.Pending {
		return order.ErrInvalidTransition
	}
	c.target = target
	return nil
}
