package ports

import (
	"context"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.Item) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.Item) error

	// Get retrieves a menu item by identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetAllByVendor retrieves every menu item listed by a vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*menu.Item, error)
}
