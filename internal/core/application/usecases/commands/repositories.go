// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. Handlers return a read
// projection of the affected aggregate so the transport can echo the
// resource without a second round trip.
package commands

import (
	"context"

	"disbursement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
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

	// ProviderRepoFactory provides access to the provider repository within a transaction.
	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	// ProviderUoW manages transactions for provider-only operations.
	// Used by commands that only touch provider aggregates.
	ProviderUoW interface {
		TxManager
		ProviderRepoFactory
	}

	// ProviderUoWFactory creates new provider unit of work instances.
	ProviderUoWFactory interface {
		Create() ProviderUoW
	}

	// UoW manages transactions spanning provider reads and order writes.
	// Used by the order lifecycle commands, which resolve the provider and
	// persist the order within one transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		ProviderRepoFactory
	}

	// UoWFactory creates new unit of work instances for order lifecycle operations.
	UoWFactory interface {
		Create() UoW
	}
)
