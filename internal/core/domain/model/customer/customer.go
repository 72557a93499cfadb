package customer

import (
	"errors"
	"fmt"
	"unicode"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/errs"
	"grabee/internal/pkg/guard"
)

const (
	// minFullNameLength is the minimum number of characters in a
	// customer's full name.
	minFullNameLength = 3
	// minPhoneDigits and maxPhoneDigits bound the number of digits in a
	// phone number.
	minPhoneDigits = 10
	maxPhoneDigits = 11
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
	// ErrFullNameTooShort is returned when the full name has fewer than
	// three characters.
	ErrFullNameTooShort = errs.NewValueIsInvalidErrorWithCause("fullName",
		fmt.Errorf("must be at least %d characters", minFullNameLength))
	// ErrAddressIsRequired is returned when the customer address is empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Customer is the profile aggregate for a customer account. It carries the
// descriptive details captured on the customer-details screen; the
// eco-points balance lives in the reward ledger, keyed by the same
// identifier.
type Customer struct {
	// id is the stable identifier issued by the identity provider
	id kernel.UUID
	// fullName is the customer's display name
	fullName string
	// phoneNumber is the contact number, 10 or 11 digits
	phoneNumber string
	// birthDate is an optional free-form date string
	birthDate string
	// address is the default delivery address
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer profile with validated details.
//
// Business rules:
//   - id must be a valid UUID (the identity provider's stable subject)
//   - fullName must have at least three characters
//   - phoneNumber must contain 10 or 11 digits
//   - address must be non-empty
//   - birthDate is optional
func NewCustomer(id kernel.UUID, fullName, phoneNumber, birthDate, address string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setFullName(fullName),
		c.setPhoneNumber(phoneNumber),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	c.birthDate = birthDate
	return c, nil
}

// RestoreCustomer reconstructs a customer profile from persistent storage.
func RestoreCustomer(id kernel.UUID, fullName, phoneNumber, birthDate, address string) (*Customer, error) {
	return NewCustomer(id, fullName, phoneNumber, birthDate, address)
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.fullName
}

// PhoneNumber returns the customer's contact number.
func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// BirthDate returns the optional birth date string.
func (c *Customer) BirthDate() string {
	return c.birthDate
}

// Address returns the customer's default delivery address.
func (c *Customer) Address() string {
	return c.address
}

// UpdateDetails replaces the profile fields, applying the same validation
// rules as construction.
func (c *Customer) UpdateDetails(fullName, phoneNumber, birthDate, address string) error {
	if err := errors.Join(
		c.setFullName(fullName),
		c.setPhoneNumber(phoneNumber),
		c.setAddress(address),
	); err != nil {
		return err
	}

	c.birthDate = birthDate
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setFullName(fullName string) error {
	if len([]rune(fullName)) < minFullNameLength {
		return ErrFullNameTooShort
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setPhoneNumber(phoneNumber string) error {
	digits := 0
	for _, r := range phoneNumber {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return errs.NewValueIsOutOfRangeError("phone digits", digits, minPhoneDigits, maxPhoneDigits)
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
