package queries

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/guard"
)

var ErrGetRewardBalanceQueryIsNotConstructed = errors.New(
	"GetRewardBalanceQuery must be created via NewGetRewardBalanceQuery constructor",
)

// GetRewardBalanceQuery retrieves a customer's eco-points balance.
// Customers who have never earned a credit have a balance of zero; the
// query never fails on an unseen customer.
type GetRewardBalanceQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRewardBalanceQuery creates a balance query for a customer.
func NewGetRewardBalanceQuery(customerID kernel.UUID) (GetRewardBalanceQuery, error) {
	q := GetRewardBalanceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return GetRewardBalanceQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRewardBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetRewardBalanceQueryIsNotConstructed)
}

// CustomerID returns the customer whose balance is requested.
func (q GetRewardBalanceQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetRewardBalanceQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	q.customerID = customerID
	return nil
}

// GetRewardBalanceQueryResponse is the read model for a ledger balance.
type GetRewardBalanceQueryResponse struct {
	CustomerID kernel.UUID
	Points     int
}
