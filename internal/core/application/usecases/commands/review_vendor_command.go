package commands

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/guard"
)

var ErrReviewVendorCommandIsNotConstructed = errors.New(
	"ReviewVendorCommand must be created via NewReviewVendorCommand constructor",
)

// ReviewVendorCommand records an admin's decision on a pending vendor
// application: approve or reject. Decisions are final.
type ReviewVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	approve  bool

	guard guard.ConstructorGuard
}

// NewReviewVendorCommand creates a command to decide a vendor application.
func NewReviewVendorCommand(vendorID kernel.UUID, approve bool) (ReviewVendorCommand, error) {
	cmd := ReviewVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVendorID(vendorID); err != nil {
		return ReviewVendorCommand{}, err
	}

	cmd.approve = approve

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewVendorCommand) Validate() error {
	return c.guard.Validate(ErrReviewVendorCommandIsNotConstructed)
}

// VendorID returns the application to decide.
func (c ReviewVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Approve reports whether the decision is an approval.
func (c ReviewVendorCommand) Approve() bool {
	return c.approve
}

func (c *ReviewVendorCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}
