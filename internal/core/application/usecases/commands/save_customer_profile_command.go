package commands

import (
	"errors"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/guard"
)

var ErrSaveCustomerProfileCommandIsNotConstructed = errors.New(
	"SaveCustomerProfileCommand must be created via NewSaveCustomerProfileCommand constructor",
)

// SaveCustomerProfileCommand creates or replaces a customer profile. The
// customer identifier comes from the identity provider, so the operation is
// an upsert: first save creates the profile, later saves update it.
//
// Field validation lives in the customer aggregate; the command only
// carries the raw values.
type SaveCustomerProfileCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	fullName    string
	phoneNumber string
	birthDate   string
	address     string

	guard guard.ConstructorGuard
}

// NewSaveCustomerProfileCommand creates a command to save a customer
// profile.
func NewSaveCustomerProfileCommand(
	customerID kernel.UUID,
	fullName string,
	phoneNumber string,
	birthDate string,
	address string,
) (SaveCustomerProfileCommand, error) {
	cmd := SaveCustomerProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return SaveCustomerProfileCommand{}, err
	}

	cmd.fullName = fullName
	cmd.phoneNumber = phoneNumber
	cmd.birthDate = birthDate
	cmd.address = address

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveCustomerProfileCommand) Validate() error {
	return c.guard.Validate(ErrSaveCustomerProfileCommandIsNotConstructed)
}

// CustomerID returns the profile owner's identifier.
func (c SaveCustomerProfileCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FullName returns the customer's display name.
func (c SaveCustomerProfileCommand) FullName() string {
	return c.fullName
}

// PhoneNumber returns the customer's contact number.
func (c SaveCustomerProfileCommand) PhoneNumber() string {
	return c.phoneNumber
}

// BirthDate returns the optional birth date string.
func (c SaveCustomerProfileCommand) BirthDate() string {
	return c.birthDate
}

// Address returns the default delivery address.
func (c SaveCustomerProfileCommand) Address() string {
	return c.address
}

func (c *SaveCustomerProfileCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
