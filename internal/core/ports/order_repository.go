// Package ports defines repository and transaction interfaces for the
// GraBee domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/core/domain/model/order"
)

// ErrConcurrentUpdate is returned by conditional updates when the record
// changed between the read and the write. Callers may retry the whole
// operation.
var ErrConcurrentUpdate = errors.New("concurrent update detected")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are archival records: they are created and updated, never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom persists the aggregate only if the stored status
	// still equals previous. Returns ErrConcurrentUpdate when another
	// writer advanced the order first. This is the conditional-update
	// primitive the delivery transition relies on.
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration
	// of the ambient transaction, serializing concurrent transitions for
	// the same order while leaving other orders untouched.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
