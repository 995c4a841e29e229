package commands

import (
	"time"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/order"
	"disbursement/internal/core/domain/model/provider"
)

// OrderResult is the read projection of an order returned by the order
// lifecycle commands. PaymentID is nil until disbursement is attempted.
type OrderResult struct {
	ID            kernel.UUID
	PaymentID     *kernel.UUID
	ProviderID    kernel.UUID
	ProviderName  string
	AccountNumber kernel.AccountNumber
	BaseAmount    kernel.Money
	FeeAmount     kernel.Money
	TotalAmount   kernel.Money
	Status        order.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// newOrderResult projects an order aggregate into its public result form.
func newOrderResult(o *order.Order) OrderResult {
	return OrderResult{
		ID:            o.ID(),
		PaymentID:     o.PaymentID(),
		ProviderID:    o.ProviderID(),
		ProviderName:  o.ProviderName(),
		AccountNumber: o.AccountNumber(),
		BaseAmount:    o.BaseAmount(),
		FeeAmount:     o.FeeAmount(),
		TotalAmount:   o.TotalAmount(),
		Status:        o.Status(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

// ProviderResult is the read projection of a provider returned by the
// registration command.
type ProviderResult struct {
	ID               kernel.UUID
	Name             string
	FeeAmount        kernel.Money
	ValidateEndpoint string
	DisburseEndpoint string
	CreatedAt        time.Time
}

// newProviderResult projects a provider aggregate into its public result form.
func newProviderResult(p *provider.Provider) ProviderResult {
	return ProviderResult{
		ID:               p.ID(),
		Name:             p.Name(),
		FeeAmount:        p.FeeAmount(),
		ValidateEndpoint: p.ValidateEndpoint(),
		DisburseEndpoint: p.DisburseEndpoint(),
		CreatedAt:        p.CreatedAt(),
	}
}
