package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetRewardBalanceQueryHandler reads a customer's balance from the
// reward_accounts table.
type GetRewardBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetRewardBalanceQueryHandler creates a handler for balance queries.
// Requires a GORM database connection.
func NewGetRewardBalanceQueryHandler(db *gorm.DB) GetRewardBalanceQueryHandler {
	return GetRewardBalanceQueryHandler{db: db}
}

// Handle returns the customer's current balance. A customer with no
// account row has a balance of zero.
func (h GetRewardBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetRewardBalanceQuery,
) (GetRewardBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRewardBalanceQueryResponse{}, err
	}

	resp := GetRewardBalanceQueryResponse{CustomerID: query.CustomerID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT points
		FROM reward_accounts
		WHERE customer_id = ?
	`, query.CustomerID().String()).Row()

	if err := row.Scan(&resp.Points); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, nil
		}
		return GetRewardBalanceQueryResponse{}, err
	}

	return resp, nil
}
