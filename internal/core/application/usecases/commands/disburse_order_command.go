package commands

import (
	"errors"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/guard"
)

var (
	ErrDisburseOrderCommandIsNotConstructed = errors.New(
		"DisburseOrderCommand must be created via NewDisburseOrderCommand constructor",
	)
)

// DisburseOrderCommand represents a request to disburse a previously created
// load order, attaching the external payment reference.
//
// Example:
//
//	cmd, err := NewDisburseOrderCommand(orderID, paymentID)
//	if err != nil {
//	    return fmt.Errorf("invalid disbursement data: %w", err)
//	}
//
//	handler := NewDisburseOrderCommandHandler(uowFactory, gateway)
//	result, err := handler.Handle(ctx, cmd)
type DisburseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDisburseOrderCommand creates a command to disburse an order.
// Validates that both identifiers are constructed UUIDs.
func NewDisburseOrderCommand(orderID, paymentID kernel.UUID) (DisburseOrderCommand, error) {
	cmd := DisburseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return DisburseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDisburseOrderCommandIsNotConstructed if validation fails.
func (c DisburseOrderCommand) Validate() error {
	return c.guard.Validate(ErrDisburseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to disburse.
func (c DisburseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentID returns the external payment reference to record on the order.
func (c DisburseOrderCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c *DisburseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DisburseOrderCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}
