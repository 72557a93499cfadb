package commands

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/errs"
	"grabee/internal/pkg/guard"
)

var ErrUpdateDeliveryDetailsCommandIsNotConstructed = errors.New(
	"UpdateDeliveryDetailsCommand must be created via NewUpdateDeliveryDetailsCommand constructor",
)

// UpdateDeliveryDetailsCommand replaces the delivery address and customer
// name on an order that has not been dispatched. Once a vendor accepts the
// order its details are frozen.
type UpdateDeliveryDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryDetailsCommand creates a command to change an order's
// delivery details while it is still Pending.
func NewUpdateDeliveryDetailsCommand(
	orderID kernel.UUID,
	customerName string,
	deliveryAddress string,
) (UpdateDeliveryDetailsCommand, error) {
	cmd := UpdateDeliveryDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return UpdateDeliveryDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryDetailsCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateDeliveryDetailsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the replacement customer name.
func (c UpdateDeliveryDetailsCommand) CustomerName() string {
	return c.customerName
}

// DeliveryAddress returns the replacement delivery address.
func (c UpdateDeliveryDetailsCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *UpdateDeliveryDetailsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryDetailsCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *UpdateDeliveryDetailsCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
