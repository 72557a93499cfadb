package order

import (
	"errors"
	"time"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrOrderAlreadyDispatched is returned when delivery details are
	// changed after the vendor accepted the order.
	ErrOrderAlreadyDispatched = errors.New("delivery details can only be changed while the order is pending")
	// ErrDeliveryAddressIsRequired is returned when an order is created
	// without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("deliveryAddress")
	// ErrCustomerNameIsRequired is returned when an order is created
	// without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrItemsAreRequired is returned when an order is created with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrTimestampIsRequired is returned when an order is created with a
	// zero creation time.
	ErrTimestampIsRequired = errs.NewValueIsRequiredError("timestamp")
)

// Order represents a food-delivery order. It is the aggregate root that
// manages the order lifecycle from checkout through vendor acceptance and
// rider pickup to delivery.
//
// Order maintains these invariants:
//   - Must have valid order and customer identifiers
//   - Must have a customer name, delivery address, and at least one item
//   - Status only moves forward: Pending -> Accepted -> PickedUp -> Delivered
//   - Customer name and delivery address are mutable only while Pending
//   - The creation timestamp is immutable
//   - Orders are archival records and are never deleted
//
// All fields are private; state changes go through validated methods so the
// invariants cannot be bypassed. Marking an order Delivered carries reward
// semantics and is reserved for the delivery completion use case; the
// aggregate itself only guarantees the transition is legal.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer that placed the order and owns
	// the reward credit once the order is delivered
	customerID kernel.UUID

	// customerName is the recipient display name, editable while Pending
	customerName string

	// deliveryAddress is the destination address, editable while Pending
	deliveryAddress string

	// items is the ordered list of item descriptors captured at checkout
	items []string

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the checkout time, immutable
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create a fresh order, ensuring all business invariants hold from the
// start.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - customerID: owning customer (must be a valid UUID)
//   - customerName: recipient display name (must be non-empty)
//   - deliveryAddress: destination address (must be non-empty)
//   - items: item descriptors (must contain at least one entry)
//   - createdAt: checkout time (must be non-zero)
//
// Returns the created order, or a joined validation error listing every
// invalid parameter.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	deliveryAddress string,
	items []string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerName(customerName),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts at Pending, this constructor
// restores the persisted status. The restored order behaves identically to
// one advanced through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	deliveryAddress string,
	items []string,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCustomerName(customerName),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or directly instantiated
// structs. Repositories call this before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer that placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the recipient display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns a copy of the item descriptors captured at checkout.
func (o *Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the checkout time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdateDeliveryDetails changes the customer name and delivery address.
// Allowed only while the order is Pending; once the vendor accepts, the
// details are locked for the rest of the lifecycle.
//
// Returns ErrOrderAlreadyDispatched if the order has advanced past Pending,
// or a validation error if either value is empty.
func (o *Order) UpdateDeliveryDetails(customerName, deliveryAddress string) error {
	if o.status != Pending {
		return ErrOrderAlreadyDispatched
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return err
	}

	return nil
}

// Accept marks the order as accepted by the vendor.
// Valid only from Pending; returns an error wrapping ErrInvalidTransition
// otherwise.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPickedUp marks the order as collected by a rider.
// Valid only from Accepted; returns an error wrapping ErrInvalidTransition
// otherwise.
func (o *Order) MarkPickedUp() error {
	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered.
//
// Valid only from PickedUp. Delivered is the terminal state; completing an
// already delivered order fails with ErrInvalidTransition. The reward
// credit that accompanies delivery is orchestrated by the delivery
// completion use case, never by the aggregate itself.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = make([]string, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrTimestampIsRequired
	}
	o.createdAt = createdAt
	return nil
}
