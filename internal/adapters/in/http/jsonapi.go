// Package http implements the inbound HTTP adapter. Requests and responses
// use a JSON:API-style envelope: every successful body is exactly one of a
// single resource document or a resource list document, and every failure is
// an error list document.
package http

import (
	"time"

	"disbursement/internal/core/application/usecases/commands"
	"disbursement/internal/core/application/usecases/queries"
)

// Resource type names on the wire.
const (
	resourceTypeOrder    = "orders"
	resourceTypeProvider = "providers"
)

// Error codes on the wire.
const (
	codeResourceNotFound = "RESOURCE_NOT_FOUND"
	codeValidationError  = "VALIDATION_ERROR"
	codeInvalidAttribute = "INVALID_ATTRIBUTE"
	codeIllegalState     = "ILLEGAL_STATE"
	codeInternalError    = "INTERNAL_ERROR"
)

// resourceObject is a single resource inside a document.
type resourceObject struct {
	Type       string      `json:"type"`
	ID         string      `json:"id"`
	Attributes interface{} `json:"attributes"`
}

// singleDocument wraps exactly one resource.
type singleDocument struct {
	Data resourceObject `json:"data"`
}

// listDocument wraps zero or more resources. Data is never null on the wire.
type listDocument struct {
	Data []resourceObject `json:"data"`
}

// errorObject describes one failure in an error document.
type errorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Code   string `json:"code"`
}

// errorDocument wraps one or more errors.
type errorDocument struct {
	Errors []errorObject `json:"errors"`
}

// orderAttributes is the wire shape of a load order. Monetary amounts are
// fixed-point decimal strings with 2 fraction digits.
type orderAttributes struct {
	PaymentID     *string   `json:"paymentId"`
	ProviderID    string    `json:"providerId"`
	ProviderName  string    `json:"providerName"`
	AccountNumber string    `json:"accountNumber"`
	BaseAmount    string    `json:"baseAmount"`
	FeeAmount     string    `json:"feeAmount"`
	TotalAmount   string    `json:"totalAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// providerAttributes is the wire shape of a provider.
type providerAttributes struct {
	Name             string    `json:"name"`
	FeeAmount        string    `json:"feeAmount"`
	ValidateEndpoint string    `json:"validateEndpoint"`
	DisburseEndpoint string    `json:"disburseEndpoint"`
	CreatedAt        time.Time `json:"createdAt"`
}

// newOrderDocument shapes a command projection into a single-resource document.
func newOrderDocument(result commands.OrderResult) singleDocument {
	var paymentID *string
	if result.PaymentID != nil {
		s := result.PaymentID.String()
		paymentID = &s
	}

	return singleDocument{Data: resourceObject{
		Type: resourceTypeOrder,
		ID:   result.ID.String(),
		Attributes: orderAttributes{
			PaymentID:     paymentID,
			ProviderID:    result.ProviderID.String(),
			ProviderName:  result.ProviderName,
			AccountNumber: result.AccountNumber.String(),
			BaseAmount:    result.BaseAmount.String(),
			FeeAmount:     result.FeeAmount.String(),
			TotalAmount:   result.TotalAmount.String(),
			Status:        result.Status.String(),
			CreatedAt:     result.CreatedAt,
			UpdatedAt:     result.UpdatedAt,
		},
	}}
}

// newOrderDocumentFromQuery shapes a read model into a single-resource document.
func newOrderDocumentFromQuery(result queries.GetOrderQueryResponse) singleDocument {
	var paymentID *string
	if result.PaymentID != nil {
		s := result.PaymentID.String()
		paymentID = &s
	}

	return singleDocument{Data: resourceObject{
		Type: resourceTypeOrder,
		ID:   result.ID.String(),
		Attributes: orderAttributes{
			PaymentID:     paymentID,
			ProviderID:    result.ProviderID.String(),
			ProviderName:  result.ProviderName,
			AccountNumber: result.AccountNumber.String(),
			BaseAmount:    result.BaseAmount.String(),
			FeeAmount:     result.FeeAmount.String(),
			TotalAmount:   result.TotalAmount.String(),
			Status:        result.Status.String(),
			CreatedAt:     result.CreatedAt,
			UpdatedAt:     result.UpdatedAt,
		},
	}}
}

// newProviderDocument shapes a command projection into a single-resource document.
func newProviderDocument(result commands.ProviderResult) singleDocument {
	return singleDocument{Data: resourceObject{
		Type: resourceTypeProvider,
		ID:   result.ID.String(),
		Attributes: providerAttributes{
			Name:             result.Name,
			FeeAmount:        result.FeeAmount.String(),
			ValidateEndpoint: result.ValidateEndpoint,
			DisburseEndpoint: result.DisburseEndpoint,
			CreatedAt:        result.CreatedAt,
		},
	}}
}

// newProviderListDocument shapes provider read models into a list document.
func newProviderListDocument(results []queries.GetAllProvidersQueryResponse) listDocument {
	resources := make([]resourceObject, 0, len(results))
	for _, r := range results {
		resources = append(resources, resourceObject{
			Type: resourceTypeProvider,
			ID:   r.ID.String(),
			Attributes: providerAttributes{
				Name:             r.Name,
				FeeAmount:        r.FeeAmount.String(),
				ValidateEndpoint: r.ValidateEndpoint,
				DisburseEndpoint: r.DisburseEndpoint,
				CreatedAt:        r.CreatedAt,
			},
		})
	}

	return listDocument{Data: resources}
}

// newErrorDocument wraps one error in an error document.
func newErrorDocument(status, title, detail, code string) errorDocument {
	return errorDocument{Errors: []errorObject{{
		Status: status,
		Title:  title,
		Detail: detail,
		Code:   code,
	}}}
}
