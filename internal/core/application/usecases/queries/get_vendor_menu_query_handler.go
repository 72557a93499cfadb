package queries

import (
	"context"

	"grabee/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorMenuQueryHandler reads a vendor's listed items from the
// menu_items table.
type GetVendorMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorMenuQueryHandler creates a handler for vendor menu queries.
// Requires a GORM database connection.
func NewGetVendorMenuQueryHandler(db *gorm.DB) GetVendorMenuQueryHandler {
	return GetVendorMenuQueryHandler{db: db}
}

// Handle returns the vendor's menu sorted by category then name. A vendor
// with no items gets an empty list, not an error.
func (h GetVendorMenuQueryHandler) Handle(
	ctx context.Context,
	query GetVendorMenuQuery,
) ([]GetVendorMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetVendorMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			is_halal,
			is_available,
			image_url
		FROM menu_items
		WHERE vendor_id = ?
		ORDER BY category, name
	`, query.VendorID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetVendorMenuQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.Price,
			&resp.Category,
			&resp.IsHalal,
			&resp.IsAvailable,
			&resp.ImageURL,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
