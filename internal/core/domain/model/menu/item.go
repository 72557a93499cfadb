package menu

import (
	"errors"
	"fmt"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/errs"
	"grabee/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for menu operations.
var (
	// ErrItemIsNotConstructed is returned when using an improperly
	// initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
	// ErrItemNameIsRequired is returned when adding an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCategoryIsRequired is returned when adding an item without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	// ErrImageURLIsRequired is returned when recording an empty image URL.
	ErrImageURLIsRequired = errs.NewValueIsRequiredError("imageURL")
)

// Item is a single entry on a vendor's menu: a food or drink offering with
// its price and availability flags. Items belong to exactly one vendor.
//
// The image itself is uploaded to blob storage outside the core; the item
// only records the resulting URL once the upload completes.
type Item struct {
	id       kernel.UUID
	vendorID kernel.UUID
	name     string
	// description is optional free text
	description string
	price       decimal.Decimal
	category    string
	isHalal     bool
	isAvailable bool
	imageURL    string

	guard guard.ConstructorGuard
}

// NewItem creates a menu item for a vendor. Name and category are
// required, the price must be positive, and the image URL may be recorded
// later via RecordImageURL.
func NewItem(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	isHalal bool,
	isAvailable bool,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setVendorID(vendorID),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	item.description = description
	item.isHalal = isHalal
	item.isAvailable = isAvailable
	return item, nil
}

// RestoreItem reconstructs a menu item from persistent storage.
func RestoreItem(
	id kernel.UUID,
	vendorID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	category string,
	isHalal bool,
	isAvailable bool,
	imageURL string,
) (*Item, error) {
	item, err := NewItem(id, vendorID, name, description, price, category, isHalal, isAvailable)
	if err != nil {
		return nil, err
	}

	item.imageURL = imageURL
	return item, nil
}

// Validate ensures the Item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// VendorID returns the owning vendor's identifier.
func (i *Item) VendorID() kernel.UUID {
	return i.vendorID
}

// Name returns the item name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the optional description text.
func (i *Item) Description() string {
	return i.description
}

// Price returns the item price.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Category returns the menu category.
func (i *Item) Category() string {
	return i.category
}

// IsHalal reports whether the item is certified halal.
func (i *Item) IsHalal() bool {
	return i.isHalal
}

// IsAvailable reports whether the item can currently be ordered.
func (i *Item) IsAvailable() bool {
	return i.isAvailable
}

// ImageURL returns the recorded image URL, empty until an upload completes.
func (i *Item) ImageURL() string {
	return i.imageURL
}

// RecordImageURL stores the blob-storage URL produced by a completed image
// upload. The upload itself happens outside the core.
func (i *Item) RecordImageURL(url string) error {
	if url == "" {
		return ErrImageURLIsRequired
	}
	i.imageURL = url
	return nil
}

// SetAvailability toggles whether the item can be ordered.
func (i *Item) SetAvailability(available bool) {
	i.isAvailable = available
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	i.vendorID = vendorID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	i.category = category
	return nil
}
