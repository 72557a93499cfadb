package commands

import (
	"context"

	"grabee/internal/core/domain/model/customer"
)

// SaveCustomerProfileCommandHandler handles creation and update of customer
// profiles. Saving is an upsert keyed by the identity provider's customer
// identifier.
type SaveCustomerProfileCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSaveCustomerProfileCommandHandler creates a handler for customer
// profile saves.
func NewSaveCustomerProfileCommandHandler(uowFactory CustomerUoWFactory) SaveCustomerProfileCommandHandler {
	return SaveCustomerProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save command. Field validation errors from the
// customer aggregate (short name, malformed phone, empty address) pass
// through unchanged.
func (h SaveCustomerProfileCommandHandler) Handle(ctx context.Context, cmd SaveCustomerProfileCommand) error {
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

	profile, err := customer.NewCustomer(
		cmd.CustomerID(),
		cmd.FullName(),
		cmd.PhoneNumber(),
		cmd.BirthDate(),
		cmd.Address(),
	)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Save(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
