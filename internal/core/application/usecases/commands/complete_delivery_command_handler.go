package commands

import (
	"context"
	"errors"

	"grabee/internal/core/domain/model/reward"
	"grabee/internal/core/ports"
)

// ErrOrderAlreadyDelivered is returned when completing an order that has
// already reached Delivered. The call is a harmless no-op: the status is
// unchanged and no second credit is applied. Callers treat this as a
// successful idempotent retry.
var ErrOrderAlreadyDelivered = errors.New("order has already been delivered")

// CompleteDeliveryCommandHandler orchestrates the delivery transition: the
// order becomes Delivered and the customer's reward account is credited
// with exactly reward.PointsPerDelivery, atomically.
//
// Concurrency contract: two concurrent completions of the same order must
// not both credit points. The handler locks the order row for the duration
// of the transaction (GetForUpdate), so completions of the same order
// serialize while different orders proceed independently. The status write
// is additionally conditional on the status observed under the lock, and
// the credit itself is idempotent on the order identifier, giving three
// independent layers of protection against double crediting.
//
// Atomicity contract: the status update and the credit share one
// transaction. Any failure rolls both back; a partially applied transition
// (status changed but no credit, or vice versa) is never observable.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion. Requires a DeliveryUoWFactory spanning the order store and
// the reward ledger.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
//
// Failure modes:
//   - errs.ErrObjectNotFound: the order does not exist; no state change
//   - ErrOrderAlreadyDelivered: idempotent re-completion; no state change,
//     no second credit
//   - order.ErrInvalidTransition: the order has not been picked up yet
//   - ErrOrderTransitionConflict: lost a race for the same order; retryable
//   - any other error: storage failure; the transaction is rolled back and
//     the whole operation is safe to retry
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status().IsFinal() {
		return ErrOrderAlreadyDelivered
	}

	previous := o.Status()
	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatusFrom(ctx, o, previous); err != nil {
		if errors.Is(err, ports.ErrConcurrentUpdate) {
			return ErrOrderTransitionConflict
		}
		return err
	}

	credit, err := reward.NewCredit(o.ID(), o.CustomerID(), reward.PointsPerDelivery)
	if err != nil {
		return err
	}

	// The ledger ignores credits whose order was already rewarded, so a
	// repaired-by-reconciliation order completes without double crediting.
	if _, err = uow.RewardLedgerRepository().Credit(ctx, credit); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
