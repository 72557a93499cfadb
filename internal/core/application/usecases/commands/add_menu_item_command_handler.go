package commands

import (
	"context"
	"errors"

	"grabee/internal/core/domain/model/menu"
)

// ErrVendorNotApproved is returned when a vendor tries to list a menu item
// before an admin has approved its application.
var ErrVendorNotApproved = errors.New("vendor is not approved to list menu items")

// AddMenuItemCommandHandler handles menu item listing. The vendor is read
// in the same transaction so the approved-vendors-only rule holds even if
// the application is rejected concurrently.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu item listing.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing command.
//
// Failure modes:
//   - errs.ErrObjectNotFound if the vendor does not exist
//   - ErrVendorNotApproved if the vendor's application is pending or rejected
//   - validation errors from the menu aggregate (empty name, non-positive
//     price, empty category)
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if !v.IsApproved() {
		return ErrVendorNotApproved
	}

	item, err := menu.NewItem(
		cmd.ItemID(),
		cmd.VendorID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.IsHalal(),
		cmd.IsAvailable(),
	)
	if err != nil {
		return err
	}

	if cmd.ImageURL() != "" {
		if err = item.RecordImageURL(cmd.ImageURL()); err != nil {
			return err
		}
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
