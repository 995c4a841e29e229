package commands

import (
	"context"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/order"
	"disbursement/internal/core/ports"
)

// CreateLoadOrderCommandHandler handles the business logic for load order
// creation: resolve the provider, validate the load with the partner API,
// price the order and persist it in NEW status.
//
// Nothing is persisted when the provider is unknown or the partner declines
// the validation; those errors propagate to the caller unchanged.
type CreateLoadOrderCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PartnerGateway
}

// NewCreateLoadOrderCommandHandler creates a handler for load order
// creation. Requires a UoWFactory for transactional persistence and the
// PartnerGateway for the provider's validation call.
func NewCreateLoadOrderCommandHandler(uowFactory UoWFactory, gateway ports.PartnerGateway) CreateLoadOrderCommandHandler {
	return CreateLoadOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the load order creation command.
//
// The provider's fee is snapshotted into the order and the total is computed
// once, with exact decimal arithmetic, as amount + fee. The partner
// validation call is synchronous: the command does not proceed until it
// returns, and a rejection aborts the transaction with nothing persisted.
func (h *CreateLoadOrderCommandHandler) Handle(ctx context.Context, cmd CreateLoadOrderCommand) (OrderResult, error) {
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

	orderProvider, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID())
	if err != nil {
		return OrderResult{}, err
	}

	if err = h.gateway.Validate(ctx, orderProvider.ValidateEndpoint(), cmd.AccountNumber(), cmd.Amount()); err != nil {
		return OrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderProvider.ID(),
		orderProvider.Name(),
		cmd.AccountNumber(),
		cmd.Amount(),
		orderProvider.FeeAmount(),
	)
	if err != nil {
		return OrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return OrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	return newOrderResult(newOrder), nil
}
