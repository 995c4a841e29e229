package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"disbursement/internal/core/application/usecases/commands"
	"disbursement/internal/core/application/usecases/queries"
	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerProviderHandler commands.RegisterProviderCommandHandler
	createLoadOrderHandler  commands.CreateLoadOrderCommandHandler
	disburseOrderHandler    commands.DisburseOrderCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	getAllProvidersHandler queries.GetAllProvidersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerProviderHandler commands.RegisterProviderCommandHandler,
	createLoadOrderHandler commands.CreateLoadOrderCommandHandler,
	disburseOrderHandler commands.DisburseOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllProvidersHandler queries.GetAllProvidersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerProviderHandler: registerProviderHandler,
		createLoadOrderHandler:  createLoadOrderHandler,
		disburseOrderHandler:    disburseOrderHandler,
		getOrderHandler:         getOrderHandler,
		getAllProvidersHandler:  getAllProvidersHandler,
		logger:                  logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires all API routes onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/providers", s.RegisterProvider)
	e.GET("/providers", s.GetProviders)
	e.POST("/orders/load", s.CreateLoadOrder)
	e.POST("/orders/load/:orderId", s.DisburseOrder)
	e.GET("/orders/:orderId", s.GetOrder)
	e.GET("/health", s.Health)
}

// providerRequest is the request envelope for provider registration.
type providerRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			Name             string      `json:"name"`
			FeeAmount        json.Number `json:"feeAmount"`
			ValidateEndpoint string      `json:"validateEndpoint"`
			DisburseEndpoint string      `json:"disburseEndpoint"`
		} `json:"attributes"`
	} `json:"data"`
}

// loadOrderRequest is the request envelope for load order creation.
type loadOrderRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			ProviderID    string      `json:"providerId"`
			AccountNumber string      `json:"accountNumber"`
			Amount        json.Number `json:"amount"`
		} `json:"attributes"`
	} `json:"data"`
}

// disburseOrderRequest is the request envelope for order disbursement.
type disburseOrderRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			PaymentID string `json:"paymentId"`
		} `json:"attributes"`
	} `json:"data"`
}

// RegisterProvider handles POST /providers.
func (s *Server) RegisterProvider(ctx echo.Context) error {
	var req providerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, newErrorDocument(
			strconv.Itoa(http.StatusUnprocessableEntity),
			"Invalid request body", "request body is not a valid resource document",
			codeInvalidAttribute))
	}

	attrs := req.Data.Attributes
	violations := make([]errorObject, 0)

	if attrs.Name == "" {
		violations = append(violations, invalidAttribute("name is required"))
	}

	feeAmount, err := parseAmount(attrs.FeeAmount, "feeAmount")
	if err != nil {
		violations = append(violations, invalidAttribute(err.Error()))
	}
	if attrs.ValidateEndpoint == "" {
		violations = append(violations, invalidAttribute("validateEndpoint is required"))
	}
	if attrs.DisburseEndpoint == "" {
		violations = append(violations, invalidAttribute("disburseEndpoint is required"))
	}

	if len(violations) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, errorDocument{Errors: violations})
	}

	cmd, err := commands.NewRegisterProviderCommand(
		attrs.Name, feeAmount, attrs.ValidateEndpoint, attrs.DisburseEndpoint)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.registerProviderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newProviderDocument(result))
}

// GetProviders handles GET /providers.
func (s *Server) GetProviders(ctx echo.Context) error {
	query := queries.NewGetAllProvidersQuery()

	providers, err := s.getAllProvidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newProviderListDocument(providers))
}

// CreateLoadOrder handles POST /orders/load.
func (s *Server) CreateLoadOrder(ctx echo.Context) error {
	var req loadOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, newErrorDocument(
			strconv.Itoa(http.StatusUnprocessableEntity),
			"Invalid request body", "request body is not a valid resource document",
			codeInvalidAttribute))
	}

	attrs := req.Data.Attributes
	violations := make([]errorObject, 0)

	providerID, err := parseUUID(attrs.ProviderID, "providerId")
	if err != nil {
		violations = append(violations, invalidAttribute(err.Error()))
	}

	accountNumber, err := kernel.NewAccountNumber(attrs.AccountNumber)
	if err != nil {
		violations = append(violations,
			invalidAttribute("accountNumber must match +63 followed by 10 digits"))
	}

	amount, err := parseAmount(attrs.Amount, "amount")
	if err != nil {
		violations = append(violations, invalidAttribute(err.Error()))
	}

	if len(violations) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, errorDocument{Errors: violations})
	}

	cmd, err := commands.NewCreateLoadOrderCommand(providerID, accountNumber, amount)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.createLoadOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrderDocument(result))
}

// DisburseOrder handles POST /orders/load/:orderId.
func (s *Server) DisburseOrder(ctx echo.Context) error {
	var req disburseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, newErrorDocument(
			strconv.Itoa(http.StatusUnprocessableEntity),
			"Invalid request body", "request body is not a valid resource document",
			codeInvalidAttribute))
	}

	violations := make([]errorObject, 0)

	orderID, err := parseUUID(ctx.Param("orderId"), "orderId")
	if err != nil {
		violations = append(violations, invalidAttribute(err.Error()))
	}

	paymentID, err := parseUUID(req.Data.Attributes.PaymentID, "paymentId")
	if err != nil {
		violations = append(violations, invalidAttribute(err.Error()))
	}

	if len(violations) > 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, errorDocument{Errors: violations})
	}

	cmd, err := commands.NewDisburseOrderCommand(orderID, paymentID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.disburseOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderDocument(result))
}

// GetOrder handles GET /orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"), "orderId")
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity,
			errorDocument{Errors: []errorObject{invalidAttribute(err.Error())}})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderDocumentFromQuery(result))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// respondError maps core error kinds onto the finite HTTP status table.
// The core never produces HTTP-shaped values; this is the only place where
// domain errors become status codes. Unexpected errors are logged with
// detail and answered with a generic body.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, newErrorDocument(
			strconv.Itoa(http.StatusNotFound),
			"Resource not found", err.Error(), codeResourceNotFound))

	case errors.Is(err, errs.ErrValidationRejected):
		return ctx.JSON(http.StatusUnprocessableEntity, newErrorDocument(
			strconv.Itoa(http.StatusUnprocessableEntity),
			"Validation rejected", rejectionDetail(err), codeValidationError))

	case errors.Is(err, errs.ErrIllegalState):
		return ctx.JSON(http.StatusConflict, newErrorDocument(
			strconv.Itoa(http.StatusConflict),
			"Illegal state", err.Error(), codeIllegalState))

	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusUnprocessableEntity, newErrorDocument(
			strconv.Itoa(http.StatusUnprocessableEntity),
			"Invalid attribute", err.Error(), codeInvalidAttribute))

	default:
		s.logger.ErrorContext(ctx.Request().Context(), "unexpected error", "error", err)
		return ctx.JSON(http.StatusInternalServerError, newErrorDocument(
			strconv.Itoa(http.StatusInternalServerError),
			"Internal error", "an unexpected error occurred", codeInternalError))
	}
}

// rejectionDetail extracts the partner-supplied detail from a validation
// rejection, falling back to the full error message.
func rejectionDetail(err error) string {
	var rejected *errs.ValidationRejectedError
	if errors.As(err, &rejected) {
		return rejected.Detail
	}
	return err.Error()
}

// invalidAttribute builds one field-level violation entry.
func invalidAttribute(detail string) errorObject {
	return errorObject{
		Status: strconv.Itoa(http.StatusUnprocessableEntity),
		Title:  "Invalid attribute",
		Detail: detail,
		Code:   codeInvalidAttribute,
	}
}

// parseAmount parses a positive monetary attribute with at most 2 fraction
// digits.
func parseAmount(raw json.Number, field string) (kernel.Money, error) {
	if raw == "" {
		return kernel.Money{}, fmt.Errorf("%s is required", field)
	}

	amount, err := kernel.MoneyFromString(raw.String())
	if err != nil || !amount.IsPositive() {
		return kernel.Money{}, fmt.Errorf(
			"%s must be a positive decimal with at most 2 fraction digits", field)
	}

	return amount, nil
}

// parseUUID parses a UUID attribute or path parameter.
func parseUUID(raw, field string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, fmt.Errorf("%s is required", field)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%s must be a valid UUID", field)
	}

	return id, nil
}
