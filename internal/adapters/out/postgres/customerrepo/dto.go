// Package customerrepo persists customer profiles.
package customerrepo

import (
	"grabee/internal/core/domain/model/customer"
	"grabee/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer profiles.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName    string    `gorm:"type:text"`
	PhoneNumber string    `gorm:"type:text"`
	BirthDate   string    `gorm:"type:text"`
	Address     string    `gorm:"type:text"`
}

// TableName specifies the database table name for customer profiles.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		FullName:    aggregate.FullName(),
		PhoneNumber: aggregate.PhoneNumber(),
		BirthDate:   aggregate.BirthDate(),
		Address:     aggregate.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.FullName, dto.PhoneNumber, dto.BirthDate, dto.Address)
}
