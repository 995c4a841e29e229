package commands

import (
	"errors"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/errs"
	"disbursement/internal/pkg/guard"
)

var (
	ErrRegisterProviderCommandIsNotConstructed = errors.New(
		"RegisterProviderCommand must be created via NewRegisterProviderCommand constructor",
	)
)

// RegisterProviderCommand represents a request to register a disbursement
// partner with its fixed fee and partner API endpoints.
//
// Example:
//
//	fee, _ := kernel.MoneyFromString("10.00")
//	cmd, err := NewRegisterProviderCommand("Globe", fee,
//	    "https://partner.example/validate", "https://partner.example/disburse")
//	if err != nil {
//	    return fmt.Errorf("invalid provider data: %w", err)
//	}
//
//	handler := NewRegisterProviderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type RegisterProviderCommand struct { //nolint:recvcheck //using for validation
	name             string
	feeAmount        kernel.Money
	validateEndpoint string
	disburseEndpoint string

	guard guard.ConstructorGuard
}

// NewRegisterProviderCommand creates a command to register a new provider.
// Validates that the name is non-empty, the fee is a constructed positive
// amount, and both endpoints are non-empty.
func NewRegisterProviderCommand(
	name string,
	feeAmount kernel.Money,
	validateEndpoint string,
	disburseEndpoint string,
) (RegisterProviderCommand, error) {
	cmd := RegisterProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setFeeAmount(feeAmount),
		cmd.setEndpoints(validateEndpoint, disburseEndpoint),
	); err != nil {
		return RegisterProviderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterProviderCommandIsNotConstructed if validation fails.
func (c RegisterProviderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProviderCommandIsNotConstructed)
}

// Name returns the provider display name.
func (c RegisterProviderCommand) Name() string {
	return c.name
}

// FeeAmount returns the fixed fee charged on every order for this provider.
func (c RegisterProviderCommand) FeeAmount() kernel.Money {
	return c.feeAmount
}

// ValidateEndpoint returns the partner address for load validation.
func (c RegisterProviderCommand) ValidateEndpoint() string {
	return c.validateEndpoint
}

// DisburseEndpoint returns the partner address for disbursement.
func (c RegisterProviderCommand) DisburseEndpoint() string {
	return c.disburseEndpoint
}

func (c *RegisterProviderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterProviderCommand) setFeeAmount(feeAmount kernel.Money) error {
	if err := feeAmount.Validate(); err != nil {
		return err
	}
	if !feeAmount.IsPositive() {
		return errs.NewValueIsInvalidError("feeAmount must be positive")
	}

	c.feeAmount = feeAmount
	return nil
}

func (c *RegisterProviderCommand) setEndpoints(validateEndpoint, disburseEndpoint string) error {
	if validateEndpoint == "" {
		return errs.NewValueIsRequiredError("validateEndpoint")
	}
	if disburseEndpoint == "" {
		return errs.NewValueIsRequiredError("disburseEndpoint")
	}

	c.validateEndpoint = validateEndpoint
	c.disburseEndpoint = disburseEndpoint
	return nil
}
