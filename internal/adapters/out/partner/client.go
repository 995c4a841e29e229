// Package partner implements the outbound gateway to a provider's partner
// API over HTTP. Both calls POST a JSON body to the endpoint stored on the
// provider aggregate and block until the partner answers; no retries.
package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/errs"
)

// defaultRejectionDetail is used when the partner declines a validation
// without supplying its own error message.
const defaultRejectionDetail = "load request rejected by provider"

// validateRequest is the wire body for the validation call. Amount is sent
// as an unquoted JSON number with exact decimal digits.
type validateRequest struct {
	AccountNumber string      `json:"accountNumber"`
	Amount        json.Number `json:"amount"`
}

// validateResponse is the partner's answer to a validation call. Error
// carries the partner-supplied rejection detail, empty when valid.
type validateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

// disburseRequest is the wire body for the disbursement call.
type disburseRequest struct {
	OrderID       string      `json:"orderId"`
	PaymentID     string      `json:"paymentId"`
	AccountNumber string      `json:"accountNumber"`
	Amount        json.Number `json:"amount"`
}

// disburseResponse is the partner's answer to a disbursement call.
type disburseResponse struct {
	Success bool `json:"success"`
}

// Client implements ports.PartnerGateway over HTTP with JSON bodies.
//
// The two calls deliberately handle failure differently. A validation that
// cannot be completed blocks order creation, so any failure becomes a
// ValidationRejectedError. A disbursement that cannot be completed is a
// terminal business outcome: transport failures yield false, never an
// error, so the caller persists a FAILED order.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a partner API client. The http.Client carries no
// timeout; partner calls block until the partner answers or the connection
// drops.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		logger:     logger.With("component", "partner_client"),
	}
}

// Validate asks the provider's validation endpoint whether the load is
// acceptable. Returns nil only on a 2xx response with valid == true.
func (c *Client) Validate(
	ctx context.Context,
	endpoint string,
	accountNumber kernel.AccountNumber,
	amount kernel.Money,
) error {
	body := validateRequest{
		AccountNumber: accountNumber.String(),
		Amount:        json.Number(amount.String()),
	}

	resp, err := c.postJSON(ctx, endpoint, body)
	if err != nil {
		return errs.NewValidationRejectedErrorWithCause(defaultRejectionDetail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errs.NewValidationRejectedError(
			fmt.Sprintf("provider validation returned status %d", resp.StatusCode))
	}

	var answer validateResponse
	if err = json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return errs.NewValidationRejectedErrorWithCause(defaultRejectionDetail, err)
	}

	if !answer.Valid {
		detail := answer.Error
		if detail == "" {
			detail = defaultRejectionDetail
		}
		return errs.NewValidationRejectedError(detail)
	}

	return nil
}

// Disburse instructs the provider to move funds for the order. Returns true
// only when the partner explicitly reports success; every failure mode,
// including transport errors, yields false.
func (c *Client) Disburse(
	ctx context.Context,
	endpoint string,
	orderID kernel.UUID,
	paymentID kernel.UUID,
	accountNumber kernel.AccountNumber,
	amount kernel.Money,
) bool {
	body := disburseRequest{
		OrderID:       orderID.String(),
		PaymentID:     paymentID.String(),
		AccountNumber: accountNumber.String(),
		Amount:        json.Number(amount.String()),
	}

	resp, err := c.postJSON(ctx, endpoint, body)
	if err != nil {
		c.logger.ErrorContext(ctx, "disbursement call failed",
			"orderId", orderID.String(), "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnContext(ctx, "disbursement rejected by provider",
			"orderId", orderID.String(), "status", resp.StatusCode)
		return false
	}

	var answer disburseResponse
	if err = json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		c.logger.ErrorContext(ctx, "disbursement response malformed",
			"orderId", orderID.String(), "error", err)
		return false
	}

	return answer.Success
}

// postJSON sends a JSON POST request to the given endpoint.
func (c *Client) postJSON(ctx context.Context, url string, payload interface{}) (*http.Response, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
