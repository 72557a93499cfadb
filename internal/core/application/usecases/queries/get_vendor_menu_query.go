package queries

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetVendorMenuQueryIsNotConstructed = errors.New(
	"GetVendorMenuQuery must be created via NewGetVendorMenuQuery constructor",
)

// GetVendorMenuQuery retrieves every menu item a vendor has listed.
type GetVendorMenuQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorMenuQuery creates a menu query for a vendor.
func NewGetVendorMenuQuery(vendorID kernel.UUID) (GetVendorMenuQuery, error) {
	q := GetVendorMenuQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setVendorID(vendorID); err != nil {
		return GetVendorMenuQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorMenuQueryIsNotConstructed)
}

// VendorID returns the vendor whose menu is requested.
func (q GetVendorMenuQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorMenuQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	q.vendorID = vendorID
	return nil
}

// GetVendorMenuQueryResponse is the read model for one menu item.
type GetVendorMenuQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	IsHalal     bool
	IsAvailable bool
	ImageURL    string
}
