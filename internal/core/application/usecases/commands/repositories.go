// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"grabee/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest interface that covers
// the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RewardRepoFactory provides access to the reward ledger within a transaction.
	RewardRepoFactory interface {
		RewardLedgerRepository() ports.RewardLedgerRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// MenuRepoFactory provides access to the menu item repository within a transaction.
	MenuRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages the delivery completion transaction, which spans
	// the order store and the reward ledger. This is the only unit of work
	// allowed to mark orders Delivered and credit points.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		RewardRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RewardUoW manages transactions that only touch the reward ledger.
	RewardUoW interface {
		TxManager
		RewardRepoFactory
	}

	// RewardUoWFactory creates new reward unit of work instances.
	RewardUoWFactory interface {
		Create() RewardUoW
	}

	// CustomerUoW manages transactions for customer profile operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// VendorUoW manages transactions for vendor-only operations.
	VendorUoW interface {
		TxManager
		VendorRepoFactory
	}

	// VendorUoWFactory creates new vendor unit of work instances.
	VendorUoWFactory interface {
		Create() VendorUoW
	}

	// MenuUoW manages transactions for menu operations, which also read
	// the vendor to enforce the approved-vendors-only rule.
	MenuUoW interface {
		TxManager
		VendorRepoFactory
		MenuRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}
)
