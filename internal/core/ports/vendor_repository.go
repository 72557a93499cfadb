package ports

import (
	"context"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/vendors"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor application.
	Add(ctx context.Context, aggregate *vendors.Vendor) error

	// Update persists changes to an existing vendor.
	Update(ctx context.Context, aggregate *vendors.Vendor) error

	// UpdateStatusFrom persists the vendor only if its stored review status
	// still equals previous, returning ErrConcurrentUpdate otherwise. Review
	// decisions go through this so two concurrent reviews cannot both land.
	UpdateStatusFrom(ctx context.Context, aggregate *vendors.Vendor, previous vendors.ApprovalStatus) error

	// Get retrieves a vendor by identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendors.Vendor, error)
}
