package commands

import (
	"errors"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/errs"
	"disbursement/internal/pkg/guard"
)

var (
	ErrCreateLoadOrderCommandIsNotConstructed = errors.New(
		"CreateLoadOrderCommand must be created via NewCreateLoadOrderCommand constructor",
	)
)

// CreateLoadOrderCommand represents a request to register a load order
// against a provider: the amount to transfer and the destination account.
// The provider validates the load before anything is persisted.
//
// Example:
//
//	amount, _ := kernel.MoneyFromString("100.00")
//	account, _ := kernel.NewAccountNumber("+639123456789")
//	cmd, err := NewCreateLoadOrderCommand(providerID, account, amount)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateLoadOrderCommandHandler(uowFactory, gateway)
//	result, err := handler.Handle(ctx, cmd)
type CreateLoadOrderCommand struct { //nolint:recvcheck //using for validation
	providerID    kernel.UUID
	accountNumber kernel.AccountNumber
	amount        kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateLoadOrderCommand creates a command to register a new load order.
// Validates that the provider id and account number are constructed and the
// amount is strictly positive.
func NewCreateLoadOrderCommand(
	providerID kernel.UUID,
	accountNumber kernel.AccountNumber,
	amount kernel.Money,
) (CreateLoadOrderCommand, error) {
	cmd := CreateLoadOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProviderID(providerID),
		cmd.setAccountNumber(accountNumber),
		cmd.setAmount(amount),
	); err != nil {
		return CreateLoadOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateLoadOrderCommandIsNotConstructed if validation fails.
func (c CreateLoadOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadOrderCommandIsNotConstructed)
}

// ProviderID returns the identifier of the provider to price the order.
func (c CreateLoadOrderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// AccountNumber returns the destination account for the load.
func (c CreateLoadOrderCommand) AccountNumber() kernel.AccountNumber {
	return c.accountNumber
}

// Amount returns the requested transfer amount.
func (c CreateLoadOrderCommand) Amount() kernel.Money {
	return c.amount
}

func (c *CreateLoadOrderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}

func (c *CreateLoadOrderCommand) setAccountNumber(accountNumber kernel.AccountNumber) error {
	if err := accountNumber.Validate(); err != nil {
		return err
	}

	c.accountNumber = accountNumber
	return nil
}

func (c *CreateLoadOrderCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount must be positive")
	}

	c.amount = amount
	return nil
}
