package ports

import (
	"context"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/reward"
)

// RewardLedgerRepository defines the persistence contract for the
// eco-points ledger. The ledger is append-only: balances only grow, and
// each delivered order is credited at most once.
type RewardLedgerRepository interface {
	// GetAccount retrieves the ledger account for a customer. Unseen
	// customers get a zero-balance account rather than an error.
	GetAccount(ctx context.Context, customerID kernel.UUID) (*reward.Account, error)

	// Credit applies a reward credit exactly once. The credit's order
	// identifier is the idempotency key: the first call for an order
	// inserts the credit record and increments the customer's balance
	// atomically, returning true; subsequent calls for the same order
	// change nothing and return false.
	//
	// Credits for different customers never contend; credits for the
	// same customer serialize on the balance row.
	Credit(ctx context.Context, credit reward.Credit) (bool, error)

	// FindUncreditedDeliveries returns ready-to-apply credits for
	// delivered orders that have no credit record. Used by the
	// reconciliation job to restore the delivered-implies-credited
	// invariant after partial failures outside the transactional path.
	FindUncreditedDeliveries(ctx context.Context) ([]reward.Credit, error)
}
