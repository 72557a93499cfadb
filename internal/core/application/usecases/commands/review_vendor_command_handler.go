package commands

import (
	"context"
	"errors"

	"grabee/internal/core/domain/model/vendors"
	"grabee/internal/core/ports"
)

// ReviewVendorCommandHandler handles admin decisions on vendor
// applications. Only pending applications can be decided; the vendor
// aggregate rejects re-reviews.
type ReviewVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewReviewVendorCommandHandler creates a handler for vendor application
// reviews.
func NewReviewVendorCommandHandler(uowFactory VendorUoWFactory) ReviewVendorCommandHandler {
	return ReviewVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
//
// Failure modes:
//   - errs.ErrObjectNotFound if the vendor does not exist
//   - vendors.ErrVendorAlreadyReviewed if the application was already
//     decided, including by a concurrent reviewer whose write landed first
func (h ReviewVendorCommandHandler) Handle(ctx context.Context, cmd ReviewVendorCommand) error {
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

	vendorRepo := uow.VendorRepository()

	v, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	previous := v.Status()
	if cmd.Approve() {
		err = v.Approve()
	} else {
		err = v.Reject()
	}
	if err != nil {
		return err
	}

	// Conditional on the status read above, so a review that raced another
	// reviewer's decision cannot overwrite it. A lost race means the
	// application was decided in the meantime.
	if err = vendorRepo.UpdateStatusFrom(ctx, v, previous); err != nil {
		if errors.Is(err, ports.ErrConcurrentUpdate) {
			return vendors.ErrVendorAlreadyReviewed
		}
		return err
	}

	return uow.Commit(ctx)
}
