// Package menurepo persists vendor menu items.
package menurepo

import (
	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for menu items. Price uses
// a numeric column so no precision is lost round-tripping decimals.
type MenuItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID       `gorm:"type:uuid;index"`
	Name        string          `gorm:"type:text"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Category    string          `gorm:"type:text"`
	IsHalal     bool
	IsAvailable bool
	ImageURL    string `gorm:"type:text"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(aggregate *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          aggregate.ID().Bytes(),
		VendorID:    aggregate.VendorID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category(),
		IsHalal:     aggregate.IsHalal(),
		IsAvailable: aggregate.IsAvailable(),
		ImageURL:    aggregate.ImageURL(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(
		id,
		vendorID,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.Category,
		dto.IsHalal,
		dto.IsAvailable,
		dto.ImageURL,
	)
}
