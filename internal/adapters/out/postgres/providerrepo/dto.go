// Package providerrepo provides data transfer objects and mapping functions
// for provider persistence. Providers are write-once: the repository exposes
// no update or delete.
package providerrepo

import (
	"time"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/provider"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProviderDTO represents the database structure for persisting provider
// aggregates.
type ProviderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name             string          `gorm:"type:varchar(255);index"`
	FeeAmount        decimal.Decimal `gorm:"type:decimal(12,2)"`
	ValidateEndpoint string          `gorm:"type:varchar(2048)"`
	DisburseEndpoint string          `gorm:"type:varchar(2048)"`
	CreatedAt        time.Time
}

// TableName specifies the database table name for provider entities.
// Overrides GORM's default naming convention to use "providers".
func (ProviderDTO) TableName() string {
	return "providers"
}

// fromDomain converts a provider domain aggregate to its database representation.
func fromDomain(aggregate *provider.Provider) ProviderDTO {
	return ProviderDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		FeeAmount:        aggregate.FeeAmount().Decimal(),
		ValidateEndpoint: aggregate.ValidateEndpoint(),
		DisburseEndpoint: aggregate.DisburseEndpoint(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a provider domain aggregate using
// RestoreProvider, which revalidates every field.
func toDomain(dto ProviderDTO) (*provider.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	feeAmount, err := kernel.NewMoney(dto.FeeAmount)
	if err != nil {
		return nil, err
	}

	return provider.RestoreProvider(
		id,
		dto.Name,
		feeAmount,
		dto.ValidateEndpoint,
		dto.DisburseEndpoint,
		dto.CreatedAt,
	)
}
