package vendors

import (
	"errors"
	"fmt"

	"grabee/internal/core/domain/model/kernel"
	"grabee/internal/pkg/errs"
	"grabee/internal/pkg/guard"
)

// Domain errors for vendor operations.
var (
	// ErrVendorIsNotConstructed is returned when using an improperly
	// initialized Vendor.
	ErrVendorIsNotConstructed = errors.New("Vendor must be created via NewVendor or RestoreVendor constructor")
	// ErrVendorAlreadyReviewed is returned when approving or rejecting a
	// vendor whose application has already been decided.
	ErrVendorAlreadyReviewed = errors.New("vendor application has already been reviewed")
	// ErrNameIsRequired is returned when registering a vendor without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCertificationURLIsRequired is returned when registering a vendor
	// without an uploaded certification document.
	ErrCertificationURLIsRequired = errs.NewValueIsRequiredError("certificationURL")
)

// ApprovalStatus is the review state of a vendor application.
// PendingApproval is initial; Approved and Rejected are terminal.
type ApprovalStatus int

const (
	// UnknownApproval catches uninitialized values.
	UnknownApproval ApprovalStatus = iota
	// PendingApproval means the application awaits an admin decision.
	PendingApproval
	// Approved means the vendor may list menu items.
	Approved
	// Rejected means the application was declined.
	Rejected
)

func approvalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		UnknownApproval: "Unknown",
		PendingApproval: "PendingApproval",
		Approved:        "Approved",
		Rejected:        "Rejected",
	}
}

// String implements fmt.Stringer.
func (s ApprovalStatus) String() string {
	if str, ok := approvalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ApprovalStatusFromString parses the persisted string form.
func ApprovalStatusFromString(v string) (ApprovalStatus, error) {
	for status, str := range approvalStatusStrings() {
		if str == v && status != UnknownApproval {
			return status, nil
		}
	}
	return UnknownApproval, errs.NewValueIsInvalidErrorWithCause("approvalStatus",
		fmt.Errorf("%q is not a valid approval status", v))
}

// Validate checks the status is one of the defined review states.
func (s ApprovalStatus) Validate() error {
	switch s {
	case PendingApproval, Approved, Rejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus",
			fmt.Errorf("%d is not a valid approval status", s))
	}
}

// Vendor is the aggregate for a restaurant or drink stand registered on
// the platform. New vendors start pending approval and may only list menu
// items once an admin approves the application.
type Vendor struct {
	id kernel.UUID
	// name is the trading name shown to customers
	name string
	// certificationURL points at the uploaded certification document in
	// blob storage; the upload itself happens outside the core
	certificationURL string
	status           ApprovalStatus

	guard guard.ConstructorGuard
}

// NewVendor registers a vendor application in PendingApproval status.
func NewVendor(id kernel.UUID, name, certificationURL string) (*Vendor, error) {
	return RestoreVendor(id, name, certificationURL, PendingApproval)
}

// RestoreVendor reconstructs a vendor from persistent storage.
func RestoreVendor(id kernel.UUID, name, certificationURL string, status ApprovalStatus) (*Vendor, error) {
	v := &Vendor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setCertificationURL(certificationURL),
		v.setStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vendor was properly constructed.
func (v *Vendor) Validate() error {
	if v == nil {
		return ErrVendorIsNotConstructed
	}
	return v.guard.Validate(ErrVendorIsNotConstructed)
}

// ID returns the vendor's identifier.
func (v *Vendor) ID() kernel.UUID {
	return v.id
}

// Name returns the vendor's trading name.
func (v *Vendor) Name() string {
	return v.name
}

// CertificationURL returns the URL of the uploaded certification document.
func (v *Vendor) CertificationURL() string {
	return v.certificationURL
}

// Status returns the application's review state.
func (v *Vendor) Status() ApprovalStatus {
	return v.status
}

// IsApproved reports whether the vendor may list menu items.
func (v *Vendor) IsApproved() bool {
	return v.status == Approved
}

// Approve marks the application as approved. Only pending applications can
// be decided; re-reviewing returns ErrVendorAlreadyReviewed.
func (v *Vendor) Approve() error {
	if v.status != PendingApproval {
		return ErrVendorAlreadyReviewed
	}
	v.status = Approved
	return nil
}

// Reject marks the application as rejected. Only pending applications can
// be decided; re-reviewing returns ErrVendorAlreadyReviewed.
func (v *Vendor) Reject() error {
	if v.status != PendingApproval {
		return ErrVendorAlreadyReviewed
	}
	v.status = Rejected
	return nil
}

func (v *Vendor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vendor) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	v.name = name
	return nil
}

func (v *Vendor) setCertificationURL(certificationURL string) error {
	if certificationURL == "" {
		return ErrCertificationURLIsRequired
	}
	v.certificationURL = certificationURL
	return nil
}

func (v *Vendor) setStatus(status ApprovalStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}
