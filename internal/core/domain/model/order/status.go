package order

import (
	"errors"
	"fmt"

	"grabee/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status change does not follow the
// forward-only delivery sequence. Use errors.Is to classify transition
// failures regardless of the specific from/to pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with strictly forward transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> Delivered
//
// Each transition advances exactly one step; regressions and skips are
// rejected. Delivered is terminal.
//
// Status is a value object that validates transitions and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	// The order is waiting for the vendor to accept it.
	Pending

	// Accepted indicates the vendor has accepted the order and is
	// preparing it. Delivery details become immutable from this point.
	Accepted

	// PickedUp indicates a rider has collected the order from the vendor
	// and is on the way to the customer.
	PickedUp

	// Delivered indicates the order reached the customer. This is the
	// terminal state and the only transition that carries reward
	// semantics.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for unrecognized values, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Accepted, PickedUp, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is terminal.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the status that directly follows s in the delivery
// sequence. Returns an error for Delivered (terminal) and invalid values.
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return Accepted, nil
	case Accepted:
		return PickedUp, nil
	case PickedUp:
		return Delivered, nil
	default:
		return Unknown, fmt.Errorf("%w: %s has no next status", ErrInvalidTransition, s)
	}
}

// TransitionTo validates that target strictly follows s in the delivery
// sequence and returns it. Regressions (Accepted -> Pending) and skips
// (Pending -> Delivered) are both rejected.
//
// Returns:
//   - (target, nil) on a valid single-step forward transition
//   - (Unknown, error wrapping ErrInvalidTransition) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	next, err := s.Next()
	if err != nil {
		return Unknown, err
	}
	if next != target {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	return target, nil
}

// Accept transitions the status to Accepted.
// Valid only from Pending.
func (s Status) Accept() (Status, error) {
	return s.TransitionTo(Accepted)
}

// PickUp transitions the status to PickedUp.
// Valid only from Accepted.
func (s Status) PickUp() (Status, error) {
	return s.TransitionTo(PickedUp)
}

// Complete transitions the status to Delivered.
// Valid only from PickedUp. Delivered is terminal: completing an already
// delivered status fails with ErrInvalidTransition, which callers translate
// into their idempotent no-op policy.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Delivered)
}
