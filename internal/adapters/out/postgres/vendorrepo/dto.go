// Package vendorrepo persists vendor applications.
package vendorrepo

import (
	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/vendors"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for vendor applications.
type VendorDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:text"`
	CertificationURL string    `gorm:"type:text"`
	Status           string    `gorm:"type:text;index"`
}

// TableName specifies the database table name for vendors.
func (VendorDTO) TableName() string {
	return "vendors"
}

func fromDomain(aggregate *vendors.Vendor) VendorDTO {
	return VendorDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		CertificationURL: aggregate.CertificationURL(),
		Status:           aggregate.Status().String(),
	}
}

func toDomain(dto VendorDTO) (*vendors.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := vendors.ApprovalStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vendors.RestoreVendor(id, dto.Name, dto.CertificationURL, status)
}
