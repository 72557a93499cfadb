// Package rewardrepo persists the eco-points ledger. Two tables back it:
// reward_accounts holds one balance row per customer, reward_credits holds
// one row per credited order and doubles as the idempotency record that
// makes crediting exactly-once.
package rewardrepo

import (
	"time"

	"github.com/google/uuid"
)

// RewardAccountDTO is the per-customer balance row.
type RewardAccountDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Points     int
}

// TableName specifies the database table name for reward accounts.
func (RewardAccountDTO) TableName() string {
	return "reward_accounts"
}

// RewardCreditDTO records a single applied credit. The order ID primary
// key is the idempotency gate: a second insert for the same order conflicts
// and is dropped, so the balance is never incremented twice for one order.
type RewardCreditDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Points     int
	CreatedAt  time.Time
}

// TableName specifies the database table name for reward credits.
func (RewardCreditDTO) TableName() string {
	return "reward_credits"
}
