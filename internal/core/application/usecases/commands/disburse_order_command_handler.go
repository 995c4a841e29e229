package commands

import (
	"context"

	"disbursement/internal/core/ports"
)

// DisburseOrderCommandHandler handles the business logic for order
// disbursement: check the order is still NEW, instruct the provider to move
// the funds, and record the terminal outcome.
//
// The order row is read with a row-level lock, so two concurrent
// disbursement attempts on the same order serialize: only the first commits
// a transition, the second observes the terminal status and fails with an
// illegal-state error.
type DisburseOrderCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PartnerGateway
}

// NewDisburseOrderCommandHandler creates a handler for order disbursement.
// Requires a UoWFactory for transactional persistence and the
// PartnerGateway for the provider's disbursement call.
func NewDisburseOrderCommandHandler(uowFactory UoWFactory, gateway ports.PartnerGateway) DisburseOrderCommandHandler {
	return DisburseOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the disbursement command.
//
// The gateway is called with the order's original base amount (not a
// re-derived value) and the provider's current disburse endpoint. The
// payment id is recorded regardless of outcome: a declined or
// transport-failed disbursement persists a FAILED order rather than
// surfacing an error, so the attempt is never lost. Only orders in NEW
// status may be disbursed; anything else fails with an illegal-state error
// and leaves the stored order unchanged.
func (h *DisburseOrderCommandHandler) Handle(ctx context.Context, cmd DisburseOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return OrderResult{}, err
	}

	if err = loadOrder.Status().ValidateDisburse(); err != nil {
		return OrderResult{}, err
	}

	orderProvider, err := uow.ProviderRepository().Get(ctx, loadOrder.ProviderID())
	if err != nil {
		return OrderResult{}, err
	}

	success := h.gateway.Disburse(
		ctx,
		orderProvider.DisburseEndpoint(),
		loadOrder.ID(),
		cmd.PaymentID(),
		loadOrder.AccountNumber(),
		loadOrder.BaseAmount(),
	)

	if err = loadOrder.Disburse(cmd.PaymentID(), success); err != nil {
		return OrderResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, loadOrder); err != nil {
		return OrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	return newOrderResult(loadOrder), nil
}
