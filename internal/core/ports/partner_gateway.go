package ports

import (
	"context"

	"disbursement/internal/core/domain/model/kernel"
)

// PartnerGateway performs the outbound calls to a provider's partner API.
// Both calls are synchronous and blocking: the invoking operation does not
// proceed (or respond) until the partner call returns. Each call is
// attempted exactly once per invocation; no retries exist anywhere in the
// core.
type PartnerGateway interface {
	// Validate asks the provider's validation endpoint whether the load is
	// acceptable for the given account and amount. Returns nil on a
	// positive answer. A declined answer, a non-2xx response or a
	// transport failure all return an errs.ValidationRejectedError
	// carrying the partner-supplied detail (or a generic message when
	// absent); validation failures block order creation entirely.
	Validate(ctx context.Context, endpoint string, accountNumber kernel.AccountNumber, amount kernel.Money) error

	// Disburse instructs the provider to move funds for the order.
	// Returns true only when the partner explicitly reports success.
	// Unlike Validate, a transport failure is not an error: it yields
	// false, because a failed disbursement is a terminal business outcome
	// that must still produce a persisted FAILED record.
	Disburse(
		ctx context.Context,
		endpoint string,
		orderID kernel.UUID,
		paymentID kernel.UUID,
		accountNumber kernel.AccountNumber,
		amount kernel.Money,
	) bool
}
