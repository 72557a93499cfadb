package commands

import (
	"context"

	"grabee/internal/core/domain/model/vendors"
)

// RegisterVendorCommandHandler handles vendor application submissions.
// Applications start in PendingApproval and wait for an admin decision.
type RegisterVendorCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewRegisterVendorCommandHandler creates a handler for vendor
// registration.
func NewRegisterVendorCommandHandler(uowFactory VendorUoWFactory) RegisterVendorCommandHandler {
	return RegisterVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterVendorCommandHandler) Handle(ctx context.Context, cmd RegisterVendorCommand) error {
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

	v, err := vendors.NewVendor(cmd.VendorID(), cmd.Name(), cmd.CertificationURL())
	if err != nil {
		return err
	}

	if err = uow.VendorRepository().Add(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
