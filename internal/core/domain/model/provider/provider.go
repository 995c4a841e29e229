package provider

import (
	"errors"
	"time"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/errs"
)

// ErrProviderIsNotConstructed is returned when a Provider instance was not
// created through NewProvider or RestoreProvider.
var ErrProviderIsNotConstructed = errors.New(
	"Provider must be created via NewProvider or RestoreProvider constructor")

// Provider represents an external disbursement partner. A provider carries
// the fixed fee added to every order it services and the two partner API
// endpoints the gateway calls: one to validate a load, one to disburse it.
//
// Provider maintains these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - The fee is strictly positive
//   - Both endpoints are non-empty
//   - createdAt is set once at registration and never mutated
//
// Providers are immutable after registration: the core exposes no update or
// delete operations.
type Provider struct {
	id               kernel.UUID
	name             string
	feeAmount        kernel.Money
	validateEndpoint string
	disburseEndpoint string
	createdAt        time.Time

	isConstructed bool
}

// NewProvider registers a new Provider, assigning its identity and creation
// timestamp.
//
// Parameters:
//   - name: display name (must be non-empty)
//   - feeAmount: fixed charge added to every order (must be strictly positive)
//   - validateEndpoint: partner address for load validation (non-empty)
//   - disburseEndpoint: partner address for disbursement (non-empty)
//
// Example:
//
//	fee, _ := kernel.MoneyFromString("10.00")
//	p, err := provider.NewProvider("Globe", fee,
//	    "https://partner.example/validate", "https://partner.example/disburse")
//	if err != nil {
//	    // handle validation error
//	}
func NewProvider(
	name string,
	feeAmount kernel.Money,
	validateEndpoint string,
	disburseEndpoint string,
) (*Provider, error) {
	p := &Provider{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(kernel.NewUUID()),
		p.setName(name),
		p.setFeeAmount(feeAmount),
		p.setEndpoints(validateEndpoint, disburseEndpoint),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProvider reconstructs a Provider from persisted state,
// revalidating every field.
func RestoreProvider(
	id kernel.UUID,
	name string,
	feeAmount kernel.Money,
	validateEndpoint string,
	disburseEndpoint string,
	createdAt time.Time,
) (*Provider, error) {
	p := &Provider{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setFeeAmount(feeAmount),
		p.setEndpoints(validateEndpoint, disburseEndpoint),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Provider instance was properly constructed.
func (p *Provider) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProviderIsNotConstructed
	}

	return nil
}

// IsEqual compares two providers by their unique identifiers.
func (p *Provider) IsEqual(other *Provider) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the provider's unique identifier.
func (p *Provider) ID() kernel.UUID {
	return p.id
}

// Name returns the provider's display name.
func (p *Provider) Name() string {
	return p.name
}

// FeeAmount returns the fixed charge added to every order for this provider.
func (p *Provider) FeeAmount() kernel.Money {
	return p.feeAmount
}

// ValidateEndpoint returns the partner address for load validation.
func (p *Provider) ValidateEndpoint() string {
	return p.validateEndpoint
}

// DisburseEndpoint returns the partner address for disbursement.
func (p *Provider) DisburseEndpoint() string {
	return p.disburseEndpoint
}

// CreatedAt returns the registration timestamp (set once, UTC).
func (p *Provider) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Provider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Provider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Provider) setFeeAmount(feeAmount kernel.Money) error {
	if err := feeAmount.Validate(); err != nil {
		return err
	}
	if !feeAmount.IsPositive() {
		return errs.NewValueIsInvalidError("feeAmount must be positive")
	}
	p.feeAmount = feeAmount
	return nil
}

func (p *Provider) setEndpoints(validateEndpoint, disburseEndpoint string) error {
	if validateEndpoint == "" {
		return errs.NewValueIsRequiredError("validateEndpoint")
	}
	if disburseEndpoint == "" {
		return errs.NewValueIsRequiredError("disburseEndpoint")
	}
	p.validateEndpoint = validateEndpoint
	p.disburseEndpoint = disburseEndpoint
	return nil
}
