package commands

import (
	"context"
)

// ReconcileRewardsCommandHandler restores the delivered-implies-credited
// invariant. It finds delivered orders with no credit record and pushes
// each through the same idempotent Credit path the completion handler uses,
// so a sweep racing a live completion can never double credit.
type ReconcileRewardsCommandHandler struct {
	uowFactory RewardUoWFactory
}

// NewReconcileRewardsCommandHandler creates a handler for reward
// reconciliation sweeps.
func NewReconcileRewardsCommandHandler(uowFactory RewardUoWFactory) ReconcileRewardsCommandHandler {
	return ReconcileRewardsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one reconciliation sweep and returns the number of credits
// applied. Zero means the invariant already held.
func (h ReconcileRewardsCommandHandler) Handle(ctx context.Context, cmd ReconcileRewardsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledger := uow.RewardLedgerRepository()

	credits, err := ledger.FindUncreditedDeliveries(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, credit := range credits {
		ok, err := ledger.Credit(ctx, credit)
		if err != nil {
			return 0, err
		}
		if ok {
			applied++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return applied, nil
}
