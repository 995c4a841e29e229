package queries

import (
	"context"
	"time"

	"disbursement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllProvidersQueryHandler retrieves all provider information from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAllProvidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProvidersQueryHandler creates a handler for provider catalog
// queries. Requires a GORM database connection for query execution.
func NewGetAllProvidersQueryHandler(db *gorm.DB) GetAllProvidersQueryHandler {
	return GetAllProvidersQueryHandler{db: db}
}

// Handle executes the query to retrieve all providers.
// Returns a slice of provider read models sorted by name. The slice is never
// nil; an empty catalog yields an empty slice.
func (h GetAllProvidersQueryHandler) Handle(
	ctx context.Context,
	query GetAllProvidersQuery,
) ([]GetAllProvidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	providers := make([]GetAllProvidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			fee_amount,
			validate_endpoint,
			disburse_endpoint,
			created_at
		FROM providers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var provider GetAllProvidersQueryResponse
		var id uuid.UUID
		var feeAmount string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&provider.Name,
			&feeAmount,
			&provider.ValidateEndpoint,
			&provider.DisburseEndpoint,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		providerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		provider.ID = providerID

		fee, feeErr := kernel.MoneyFromString(feeAmount)
		if feeErr != nil {
			return nil, feeErr
		}
		provider.FeeAmount = fee
		provider.CreatedAt = createdAt

		providers = append(providers, provider)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}
