package commands

import (
	"context"

	"disbursement/internal/core/domain/model/provider"
)

// RegisterProviderCommandHandler handles the business logic for provider
// registration. Providers are write-once: the handler persists the new
// aggregate and returns its projection.
type RegisterProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewRegisterProviderCommandHandler creates a handler for provider
// registration operations. Requires a ProviderUoWFactory for transactional
// persistence.
func NewRegisterProviderCommandHandler(uowFactory ProviderUoWFactory) RegisterProviderCommandHandler {
	return RegisterProviderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provider registration command.
// Assigns the provider identity and registration timestamp, and uses a
// transaction to ensure the provider is properly persisted or rolled back
// on error.
func (h *RegisterProviderCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterProviderCommand,
) (ProviderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProviderResult{}, err
	}

	newProvider, err := provider.NewProvider(
		cmd.Name(),
		cmd.FeeAmount(),
		cmd.ValidateEndpoint(),
		cmd.DisburseEndpoint(),
	)
	if err != nil {
		return ProviderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ProviderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProviderRepository().Add(ctx, newProvider); err != nil {
		return ProviderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProviderResult{}, err
	}

	return newProviderResult(newProvider), nil
}
