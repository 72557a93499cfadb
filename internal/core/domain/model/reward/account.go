package reward

import (
	"errors"
	"fmt"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/errs"
)

// PointsPerDelivery is the fixed eco-points reward credited for each
// distinct delivered order.
const PointsPerDelivery = 10

// Domain errors for reward operations.
var (
	// ErrAccountIsNotConstructed is returned when an Account was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")
	// ErrCreditIsNotConstructed is returned when a Credit was not created
	// through NewCredit.
	ErrCreditIsNotConstructed = errors.New("Credit must be created via NewCredit constructor")
)

// Account is the per-customer reward ledger entry. The balance is a
// non-negative integer that only ever increases; debits do not exist in
// this domain.
type Account struct {
	customerID kernel.UUID
	points     int

	isConstructed bool
}

// NewAccount creates an empty ledger account for a customer.
func NewAccount(customerID kernel.UUID) (*Account, error) {
	return RestoreAccount(customerID, 0)
}

// RestoreAccount reconstructs a ledger account from persistent storage.
// The balance must be non-negative.
func RestoreAccount(customerID kernel.UUID, points int) (*Account, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if points < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("points",
			fmt.Errorf("%d is negative", points))
	}

	return &Account{
		customerID:    customerID,
		points:        points,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// CustomerID returns the owning customer's identifier.
func (a *Account) CustomerID() kernel.UUID {
	return a.customerID
}

// Points returns the current balance.
func (a *Account) Points() int {
	return a.points
}

// Apply adds a credit to the balance. The credit must belong to this
// account's customer. Balances only grow; there is no debit operation.
func (a *Account) Apply(credit Credit) error {
	if err := credit.Validate(); err != nil {
		return err
	}
	if !credit.CustomerID().IsEqual(a.customerID) {
		return errs.NewValueIsInvalidErrorWithCause("credit",
			fmt.Errorf("credit belongs to customer %s, not %s", credit.CustomerID(), a.customerID))
	}

	a.points += credit.Points()
	return nil
}

// Credit is an immutable value object describing a single reward credit.
// Exactly one credit exists per delivered order; the order identifier is
// the idempotency key that storage adapters enforce uniqueness on.
type Credit struct {
	orderID    kernel.UUID
	customerID kernel.UUID
	points     int

	isConstructed bool
}

// NewCredit creates a reward credit for a delivered order. Points must be
// positive; the standard amount is PointsPerDelivery.
func NewCredit(orderID, customerID kernel.UUID, points int) (Credit, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
	); err != nil {
		return Credit{}, err
	}
	if points <= 0 {
		return Credit{}, errs.NewValueIsInvalidErrorWithCause("points",
			fmt.Errorf("%d is not greater than 0", points))
	}

	return Credit{
		orderID:       orderID,
		customerID:    customerID,
		points:        points,
		isConstructed: true,
	}, nil
}

// Validate ensures the Credit was properly constructed.
func (c Credit) Validate() error {
	if !c.isConstructed {
		return ErrCreditIsNotConstructed
	}
	return nil
}

// OrderID returns the delivered order this credit rewards.
func (c Credit) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer receiving the credit.
func (c Credit) CustomerID() kernel.UUID {
	return c.customerID
}

// Points returns the credited amount.
func (c Credit) Points() int {
	return c.points
}
