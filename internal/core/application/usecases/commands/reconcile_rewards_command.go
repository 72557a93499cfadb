package commands

import (
	"errors"

	"grabee/internal/pkg/guard"
)

var ErrReconcileRewardsCommandIsNotConstructed = errors.New(
	"ReconcileRewardsCommand must be created via NewReconcileRewardsCommand constructor",
)

// ReconcileRewardsCommand sweeps for delivered orders that have no credit
// record and applies the missing credits. The transactional completion path
// makes such orders impossible in normal operation; the sweep exists to
// repair state after manual interventions or storage-level incidents.
type ReconcileRewardsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRewardsCommand creates a reconciliation command.
func NewReconcileRewardsCommand() (ReconcileRewardsCommand, error) {
	return ReconcileRewardsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcileRewardsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRewardsCommandIsNotConstructed)
}
