package rewardrepo

import (
	"context"
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/order"
	"grabee/internal/core/domain/model/reward"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRewardLedgerRepository implements RewardLedgerRepository using GORM.
type GormRewardLedgerRepository struct {
	db *gorm.DB
}

// NewGormRewardLedgerRepository creates a new GORM reward ledger repository.
func NewGormRewardLedgerRepository(db *gorm.DB) *GormRewardLedgerRepository {
	return &GormRewardLedgerRepository{db: db}
}

// GetAccount retrieves the ledger account for a customer. A customer with
// no balance row gets a zero-balance account, not an error.
func (r *GormRewardLedgerRepository) GetAccount(
	ctx context.Context,
	customerID kernel.UUID,
) (*reward.Account, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto RewardAccountDTO
	err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reward.NewAccount(customerID)
		}
		return nil, err
	}

	return reward.RestoreAccount(customerID, dto.Points)
}

// Credit applies a reward credit exactly once. The credit row insert with
// ON CONFLICT DO NOTHING is the idempotency gate: only the writer that wins
// the insert increments the balance. The balance upsert serializes writers
// for the same customer on the account row; different customers touch
// disjoint rows and never contend.
func (r *GormRewardLedgerRepository) Credit(ctx context.Context, credit reward.Credit) (bool, error) {
	if err := credit.Validate(); err != nil {
		return false, err
	}

	creditDTO := RewardCreditDTO{
		OrderID:    credit.OrderID().Bytes(),
		CustomerID: credit.CustomerID().Bytes(),
		Points:     credit.Points(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&creditDTO)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		// This order was already credited
		return false, nil
	}

	accountDTO := RewardAccountDTO{
		CustomerID: credit.CustomerID().Bytes(),
		Points:     credit.Points(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"points": gorm.Expr("reward_accounts.points + ?", credit.Points()),
			}),
		}).
		Create(&accountDTO).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

// FindUncreditedDeliveries returns ready-to-apply credits for delivered
// orders that have no credit row. In normal operation the completion
// transaction keeps this empty; the reconciliation job calls it to repair
// state after incidents.
func (r *GormRewardLedgerRepository) FindUncreditedDeliveries(ctx context.Context) ([]reward.Credit, error) {
	credits := make([]reward.Credit, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT o.id, o.customer_id
		FROM orders o
		LEFT JOIN reward_credits rc ON rc.order_id = o.id
		WHERE o.status = ? AND rc.order_id IS NULL
		ORDER BY o.created_at
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, customerID uuid.UUID
		if err = rows.Scan(&orderID, &customerID); err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		cid, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		credit, creditErr := reward.NewCredit(oid, cid, reward.PointsPerDelivery)
		if creditErr != nil {
			return nil, creditErr
		}
		credits = append(credits, credit)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return credits, nil
}
