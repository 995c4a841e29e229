package queries

import (
	"errors"
	"time"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/guard"
)

var (
	ErrGetAllProvidersQueryIsNotConstructed = errors.New(
		"GetAllProvidersQuery must be created via NewGetAllProvidersQuery constructor",
	)
)

// GetAllProvidersQuery retrieves the full provider catalog, including the fee
// each provider charges per load order.
//
// Example:
//
//	query := NewGetAllProvidersQuery()
//	handler := NewGetAllProvidersQueryHandler(db)
//
//	providers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve providers: %w", err)
//	}
type GetAllProvidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProvidersQuery creates a query to retrieve all providers.
// This is a parameterless query that fetches the complete provider list.
func NewGetAllProvidersQuery() GetAllProvidersQuery {
	return GetAllProvidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProvidersQueryIsNotConstructed if validation fails.
func (q GetAllProvidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProvidersQueryIsNotConstructed)
}

// GetAllProvidersQueryResponse represents provider information in the read model.
type GetAllProvidersQueryResponse struct {
	ID               kernel.UUID
	Name             string
	FeeAmount        kernel.Money
	ValidateEndpoint string
	DisburseEndpoint string
	CreatedAt        time.Time
}
