// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its string form and indexed for the
// active-orders and reconciliation queries.
type OrderDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName    string         `gorm:"type:text"`
	DeliveryAddress string         `gorm:"type:text"`
	Items           pq.StringArray `gorm:"type:text[]"`
	Status          string         `gorm:"type:text;index"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Items:           pq.StringArray(aggregate.Items()),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		dto.DeliveryAddress,
		[]string(dto.Items),
		status,
		dto.CreatedAt,
	)
}
