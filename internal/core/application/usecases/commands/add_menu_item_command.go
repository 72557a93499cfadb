package commands

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand lists a new item on a vendor's menu. Only approved
// vendors may list items; the handler checks the vendor's review state.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	vendorID    kernel.UUID
	name        string
	description string
	price       decimal.Decimal
	category    string
	isHalal     bool
	isAvailable bool
	// imageURL is the blob-storage URL of the item photo, empty when the
	// upload has not completed yet
	imageURL string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
	itemID kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	isHalal bool,
	isAvailable bool,
	imageURL string,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	cmd.name = name
	cmd.description = description
	cmd.price = price
	cmd.category = category
	cmd.isHalal = isHalal
	cmd.isAvailable = isAvailable
	cmd.imageURL = imageURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// ItemID returns the new item's identifier.
func (c AddMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// VendorID returns the listing vendor's identifier.
func (c AddMenuItemCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the item name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Description returns the optional description text.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Price returns the item price.
func (c AddMenuItemCommand) Price() decimal.Decimal {
	return c.price
}

// Category returns the menu category.
func (c AddMenuItemCommand) Category() string {
	return c.category
}

// IsHalal reports whether the item is certified halal.
func (c AddMenuItemCommand) IsHalal() bool {
	return c.isHalal
}

// IsAvailable reports whether the item can be ordered right away.
func (c AddMenuItemCommand) IsAvailable() bool {
	return c.isAvailable
}

// ImageURL returns the uploaded photo URL, empty if none was provided.
func (c AddMenuItemCommand) ImageURL() string {
	return c.imageURL
}

func (c *AddMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *AddMenuItemCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}
