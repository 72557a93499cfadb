package commands

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/guard"
)

var ErrRegisterVendorCommandIsNotConstructed = errors.New(
	"RegisterVendorCommand must be created via NewRegisterVendorCommand constructor",
)

// RegisterVendorCommand submits a vendor application. The certification
// document is uploaded to blob storage beforehand; the command carries the
// resulting URL. New applications start pending approval.
type RegisterVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID         kernel.UUID
	name             string
	certificationURL string

	guard guard.ConstructorGuard
}

// NewRegisterVendorCommand creates a command to register a vendor
// application.
func NewRegisterVendorCommand(
	vendorID kernel.UUID,
	name string,
	certificationURL string,
) (RegisterVendorCommand, error) {
	cmd := RegisterVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVendorID(vendorID); err != nil {
		return RegisterVendorCommand{}, err
	}

	cmd.name = name
	cmd.certificationURL = certificationURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVendorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVendorCommandIsNotConstructed)
}

// VendorID returns the new vendor's identifier.
func (c RegisterVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Name returns the trading name.
func (c RegisterVendorCommand) Name() string {
	return c.name
}

// CertificationURL returns the uploaded certification document's URL.
func (c RegisterVendorCommand) CertificationURL() string {
	return c.certificationURL
}

func (c *RegisterVendorCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	c.vendorID = vendorID
	return nil
}
