// Package reward models the eco-points ledger. An Account holds a
// customer's non-negative, monotonically increasing balance; a Credit is
// the immutable record of a single +10 reward for one delivered order.
// The order identifier on a Credit is the idempotency key that guarantees
// no order is ever rewarded twice.
package reward
