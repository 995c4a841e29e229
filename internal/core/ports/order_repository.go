package ports

import (
	"context"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by identifier while acquiring a
	// row-level lock for the duration of the surrounding transaction.
	// Concurrent disbursement attempts on the same order serialize here:
	// the second caller blocks until the first commits, then observes the
	// already-transitioned status. Must be called within a unit of work.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
