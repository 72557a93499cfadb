package commands

import (
	"context"
	"errors"

	"grabee/internal/core/domain/model/order"
	"grabee/internal/core/ports"
)

// ErrOrderTransitionConflict is returned when another caller advanced the
// same order between this handler's read and write. The operation left no
// partial effects and may be retried.
var ErrOrderTransitionConflict = errors.New("a concurrent transition is in progress for this order")

// AdvanceOrderStatusCommandHandler applies status-only transitions
// (vendor acceptance, rider pickup). The write is conditional on the
// status observed at read time, so lost updates surface as
// ErrOrderTransitionConflict instead of silently overwriting.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status-only
// order transitions.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order to the command's target status.
//
// Failure modes:
//   - errs.ErrObjectNotFound if the order does not exist
//   - order.ErrInvalidTransition if the target does not directly follow
//     the current status
//   - ErrOrderTransitionConflict if a concurrent caller advanced the
//     order first
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := o.Status()
	if _, err = previous.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	switch cmd.Target() {
	case order.Accepted:
		err = o.Accept()
	case order.PickedUp:
		err = o.MarkPickedUp()
	default:
		err = order.ErrInvalidTransition
	}
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateStatusFrom(ctx, o, previous); err != nil {
		if errors.Is(err, ports.ErrConcurrentUpdate) {
			return ErrOrderTransitionConflict
		}
		return err
	}

	return uow.Commit(ctx)
}
