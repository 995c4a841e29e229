package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "disbursement/internal/adapters/in/http"
	"disbursement/internal/core/application/usecases/commands"
	"disbursement/internal/core/application/usecases/queries"
	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/order"
	"disbursement/internal/core/domain/model/provider"
	"disbursement/internal/core/ports"
	"disbursement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepository returns canned aggregates and errors.
type stubOrderRepository struct {
	order  *order.Order
	getErr error
}

func (r *stubOrderRepository) Add(_ context.Context, _ *order.Order) error    { return nil }
func (r *stubOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (r *stubOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return r.order, r.getErr
}
func (r *stubOrderRepository) GetForUpdate(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return r.order, r.getErr
}

// stubProviderRepository returns canned aggregates and errors.
type stubProviderRepository struct {
	provider *provider.Provider
	getErr   error
}

func (r *stubProviderRepository) Add(_ context.Context, _ *provider.Provider) error { return nil }
func (r *stubProviderRepository) Get(_ context.Context, _ kernel.UUID) (*provider.Provider, error) {
	return r.provider, r.getErr
}
func (r *stubProviderRepository) GetAll(_ context.Context) ([]*provider.Provider, error) {
	return []*provider.Provider{}, nil
}

// stubUoW satisfies the command repositories contract with stub repos.
type stubUoW struct {
	orders    *stubOrderRepository
	providers *stubProviderRepository
	beginErr  error
}

func (u *stubUoW) Begin(_ context.Context) error                { return u.beginErr }
func (u *stubUoW) Commit(_ context.Context) error               { return nil }
func (u *stubUoW) Rollback(_ context.Context) error             { return nil }
func (u *stubUoW) OrderRepository() ports.OrderRepository       { return u.orders }
func (u *stubUoW) ProviderRepository() ports.ProviderRepository { return u.providers }

type stubUoWFactory struct{ uow *stubUoW }

func (f *stubUoWFactory) Create() commands.UoW { return f.uow }

type stubGateway struct {
	validateErr error
	success     bool
}

func (g *stubGateway) Validate(_ context.Context, _ string, _ kernel.AccountNumber, _ kernel.Money) error {
	return g.validateErr
}

func (g *stubGateway) Disburse(
	_ context.Context, _ string, _, _ kernel.UUID, _ kernel.AccountNumber, _ kernel.Money,
) bool {
	return g.success
}

func newTestServer(uow *stubUoW, gateway *stubGateway) *httpin.Server {
	factory := &stubUoWFactory{uow: uow}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return httpin.NewServer(
		commands.RegisterProviderCommandHandler{},
		commands.NewCreateLoadOrderCommandHandler(factory, gateway),
		commands.NewDisburseOrderCommandHandler(factory, gateway),
		queries.GetOrderQueryHandler{},
		queries.GetAllProvidersQueryHandler{},
		logger,
	)
}

func doRequest(t *testing.T, server *httpin.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	server.RegisterRoutes(e)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var doc struct {
		Errors []map[string]any `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	return doc.Errors
}

func TestHealth(t *testing.T) {
	server := newTestServer(&stubUoW{}, &stubGateway{})

	rec := doRequest(t, server, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestCreateLoadOrder_FieldValidation_OneEntryPerViolation(t *testing.T) {
	server := newTestServer(&stubUoW{}, &stubGateway{})

	body := `{"data": {"type": "orders", "attributes": {
		"providerId": "not-a-uuid",
		"accountNumber": "0917123",
		"amount": -5
	}}}`
	rec := doRequest(t, server, http.MethodPost, "/orders/load", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	violations := decodeErrors(t, rec)
	require.Len(t, violations, 3)
	for _, v := range violations {
		assert.Equal(t, "INVALID_ATTRIBUTE", v["code"])
		assert.Equal(t, "422", v["status"])
	}
}

func TestCreateLoadOrder_AccountNumberPattern(t *testing.T) {
	server := newTestServer(&stubUoW{}, &stubGateway{})

	for _, account := range []string{"+6391234567", "09171234567", "+64912345678", ""} {
		body := `{"data": {"type": "orders", "attributes": {
			"providerId": "` + kernel.NewUUID().String() + `",
			"accountNumber": "` + account + `",
			"amount": 100.00
		}}}`
		rec := doRequest(t, server, http.MethodPost, "/orders/load", body)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "account %q", account)
		violations := decodeErrors(t, rec)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0]["detail"], "+63")
	}
}

func TestCreateLoadOrder_ProviderNotFound_Returns404(t *testing.T) {
	uow := &stubUoW{
		orders: &stubOrderRepository{},
		providers: &stubProviderRepository{
			getErr: errs.NewObjectNotFoundError("provider", "some-id"),
		},
	}
	server := newTestServer(uow, &stubGateway{})

	body := `{"data": {"type": "orders", "attributes": {
		"providerId": "` + kernel.NewUUID().String() + `",
		"accountNumber": "+639123456789",
		"amount": 100.00
	}}}`
	rec := doRequest(t, server, http.MethodPost, "/orders/load", body)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	violations := decodeErrors(t, rec)
	require.Len(t, violations, 1)
	assert.Equal(t, "RESOURCE_NOT_FOUND", violations[0]["code"])
}

func TestCreateLoadOrder_PartnerRejection_Returns422WithDetail(t *testing.T) {
	testProvider := newTestProvider(t)
	uow := &stubUoW{
		orders:    &stubOrderRepository{},
		providers: &stubProviderRepository{provider: testProvider},
	}
	gateway := &stubGateway{validateErr: errs.NewValidationRejectedError("Insufficient balance")}
	server := newTestServer(uow, gateway)

	body := `{"data": {"type": "orders", "attributes": {
		"providerId": "` + testProvider.ID().String() + `",
		"accountNumber": "+639123456789",
		"amount": 100.00
	}}}`
	rec := doRequest(t, server, http.MethodPost, "/orders/load", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	violations := decodeErrors(t, rec)
	require.Len(t, violations, 1)
	assert.Equal(t, "VALIDATION_ERROR", violations[0]["code"])
	assert.Equal(t, "Insufficient balance", violations[0]["detail"])
}

func TestCreateLoadOrder_Success_ReturnsSingleResourceDocument(t *testing.T) {
	testProvider := newTestProvider(t)
	uow := &stubUoW{
		orders:    &stubOrderRepository{},
		providers: &stubProviderRepository{provider: testProvider},
	}
	server := newTestServer(uow, &stubGateway{})

	body := `{"data": {"type": "orders", "attributes": {
		"providerId": "` + testProvider.ID().String() + `",
		"accountNumber": "+639123456789",
		"amount": 100.00
	}}}`
	rec := doRequest(t, server, http.MethodPost, "/orders/load", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var doc struct {
		Data struct {
			Type       string         `json:"type"`
			ID         string         `json:"id"`
			Attributes map[string]any `json:"attributes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Equal(t, "orders", doc.Data.Type)
	assert.NotEmpty(t, doc.Data.ID)
	assert.Equal(t, "NEW", doc.Data.Attributes["status"])
	assert.Equal(t, "100.00", doc.Data.Attributes["baseAmount"])
	assert.Equal(t, "10.00", doc.Data.Attributes["feeAmount"])
	assert.Equal(t, "110.00", doc.Data.Attributes["totalAmount"])
	assert.Nil(t, doc.Data.Attributes["paymentId"])
}

func TestDisburseOrder_AlreadyTerminal_Returns409(t *testing.T) {
	testProvider := newTestProvider(t)
	terminalOrder := newDisbursedOrder(t, testProvider)
	uow := &stubUoW{
		orders:    &stubOrderRepository{order: terminalOrder},
		providers: &stubProviderRepository{provider: testProvider},
	}
	server := newTestServer(uow, &stubGateway{success: true})

	body := `{"data": {"type": "orders", "attributes": {
		"paymentId": "` + kernel.NewUUID().String() + `"
	}}}`
	rec := doRequest(t, server, http.MethodPost, "/orders/load/"+terminalOrder.ID().String(), body)

	assert.Equal(t, http.StatusConflict, rec.Code)
	violations := decodeErrors(t, rec)
	require.Len(t, violations, 1)
	assert.Equal(t, "ILLEGAL_STATE", violations[0]["code"])
	assert.Contains(t, violations[0]["detail"], "SUCCESS")
}

func TestDisburseOrder_GatewayFailure_Returns200Failed(t *testing.T) {
	testProvider := newTestProvider(t)
	newOrder := newPendingOrder(t, testProvider)
	uow := &stubUoW{
		orders:    &stubOrderRepository{order: newOrder},
		providers: &stubProviderRepository{provider: testProvider},
	}
	server := newTestServer(uow, &stubGateway{success: false})

	body := `{"data": {"type": "orders", "attributes": {
		"paymentId": "` + kernel.NewUUID().String() + `"
	}}}`
	rec := doRequest(t, server, http.MethodPost, "/orders/load/"+newOrder.ID().String(), body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var doc struct {
		Data struct {
			Attributes map[string]any `json:"attributes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "FAILED", doc.Data.Attributes["status"])
	assert.NotNil(t, doc.Data.Attributes["paymentId"])
}

func TestDisburseOrder_MalformedIDs_Returns422(t *testing.T) {
	server := newTestServer(&stubUoW{}, &stubGateway{})

	body := `{"data": {"type": "orders", "attributes": {"paymentId": "nope"}}}`
	rec := doRequest(t, server, http.MethodPost, "/orders/load/also-nope", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	violations := decodeErrors(t, rec)
	require.Len(t, violations, 2)
}

func TestGetOrder_MalformedID_Returns422(t *testing.T) {
	server := newTestServer(&stubUoW{}, &stubGateway{})

	rec := doRequest(t, server, http.MethodGet, "/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	violations := decodeErrors(t, rec)
	require.Len(t, violations, 1)
	assert.Equal(t, "INVALID_ATTRIBUTE", violations[0]["code"])
}

func TestRegisterProvider_MissingAttributes_OneEntryPerViolation(t *testing.T) {
	server := newTestServer(&stubUoW{}, &stubGateway{})

	body := `{"data": {"type": "providers", "attributes": {}}}`
	rec := doRequest(t, server, http.MethodPost, "/providers", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	violations := decodeErrors(t, rec)
	require.Len(t, violations, 4)
}

func newTestProvider(t *testing.T) *provider.Provider {
	t.Helper()
	fee, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	p, err := provider.NewProvider("Globe", fee,
		"https://partner.example/validate", "https://partner.example/disburse")
	require.NoError(t, err)
	return p
}

func newPendingOrder(t *testing.T, p *provider.Provider) *order.Order {
	t.Helper()
	account, err := kernel.NewAccountNumber("+639123456789")
	require.NoError(t, err)
	base, err := kernel.MoneyFromString("100.00")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), p.ID(), p.Name(), account, base, p.FeeAmount())
	require.NoError(t, err)
	return o
}

func newDisbursedOrder(t *testing.T, p *provider.Provider) *order.Order {
	t.Helper()
	o := newPendingOrder(t, p)
	require.NoError(t, o.Disburse(kernel.NewUUID(), true))
	return o
}
