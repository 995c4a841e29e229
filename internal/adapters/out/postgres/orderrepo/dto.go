// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns are exact decimals; the provider name and fee are
// creation-time snapshots and never re-read from the providers table.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID     *uuid.UUID      `gorm:"type:uuid"`
	ProviderID    uuid.UUID       `gorm:"type:uuid;index"`
	ProviderName  string          `gorm:"type:varchar(255)"`
	AccountNumber string          `gorm:"type:varchar(13)"`
	BaseAmount    decimal.Decimal `gorm:"type:decimal(12,2)"`
	FeeAmount     decimal.Decimal `gorm:"type:decimal(12,2)"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status        string          `gorm:"type:varchar(10);index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var paymentID *uuid.UUID
	if id := aggregate.PaymentID(); id != nil {
		raw := id.Bytes()
		paymentID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		PaymentID:     paymentID,
		ProviderID:    aggregate.ProviderID().Bytes(),
		ProviderName:  aggregate.ProviderName(),
		AccountNumber: aggregate.AccountNumber().String(),
		BaseAmount:    aggregate.BaseAmount().Decimal(),
		FeeAmount:     aggregate.FeeAmount().Decimal(),
		TotalAmount:   aggregate.TotalAmount().Decimal(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which revalidates
// every field so corrupted rows cannot become live aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var paymentID *kernel.UUID
	if dto.PaymentID != nil {
		pID, paymentErr := kernel.UUIDFromBytes((*dto.PaymentID)[:])
		if paymentErr != nil {
			return nil, paymentErr
		}

		paymentID = &pID
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	accountNumber, err := kernel.NewAccountNumber(dto.AccountNumber)
	if err != nil {
		return nil, err
	}

	baseAmount, err := kernel.NewMoney(dto.BaseAmount)
	if err != nil {
		return nil, err
	}

	feeAmount, err := kernel.NewMoney(dto.FeeAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		paymentID,
		providerID,
		dto.ProviderName,
		accountNumber,
		baseAmount,
		feeAmount,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
