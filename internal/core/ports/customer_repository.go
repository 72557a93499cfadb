package ports

import (
	"context"

	"grabee/internal/core/domain/model/customer"
	"grabee/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// profiles. Profiles are keyed by the identity provider's stable subject,
// so Save is an upsert.
type CustomerRepository interface {
	// Save creates or replaces the customer profile.
	Save(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer profile by identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
