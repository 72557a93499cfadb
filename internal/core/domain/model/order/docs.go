// Package order provides domain entities and business logic for
// food-delivery orders. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, delivery details, and lifecycle
//   - Status: a state machine enforcing the forward-only delivery sequence
//
// Key business rules:
//   - Orders require valid identifiers, a recipient, an address, and items
//   - Status follows a strict workflow: Pending -> Accepted -> PickedUp -> Delivered
//   - Transitions advance exactly one step; regressions and skips are rejected
//   - Delivery details are editable only while the order is Pending
//   - Delivered is terminal; the accompanying reward credit is orchestrated
//     by the application layer, not by the aggregate
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
