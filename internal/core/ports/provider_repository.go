package ports

import (
	"context"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for provider
// aggregates. Providers are write-once: there is no update or delete.
type ProviderRepository interface {
	// Add persists a newly registered provider.
	Add(ctx context.Context, aggregate *provider.Provider) error

	// Get retrieves a provider by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such provider exists.
	Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error)

	// GetAll retrieves every registered provider.
	// Returns an empty slice, never nil, when none exist.
	GetAll(ctx context.Context) ([]*provider.Provider, error)
}
