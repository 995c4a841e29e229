package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/core/domain/model/order"
	"disbursement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single load order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order.
// Returns an object-not-found error when no order exists with the given id.
// Converts database types to domain types for consistency.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			payment_id,
			provider_id,
			provider_name,
			account_number,
			base_amount,
			fee_amount,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		id            uuid.UUID
		paymentID     uuid.NullUUID
		providerID    uuid.UUID
		providerName  string
		accountNumber string
		baseAmount    string
		feeAmount     string
		totalAmount   string
		status        string
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := row.Scan(
		&id,
		&paymentID,
		&providerID,
		&providerName,
		&accountNumber,
		&baseAmount,
		&feeAmount,
		&totalAmount,
		&status,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return mapOrderRow(
		id, paymentID, providerID,
		providerName, accountNumber,
		baseAmount, feeAmount, totalAmount,
		status, createdAt, updatedAt,
	)
}

// mapOrderRow converts raw column values into the order read model,
// revalidating each value through the domain types.
func mapOrderRow(
	id uuid.UUID,
	paymentID uuid.NullUUID,
	providerID uuid.UUID,
	providerName string,
	accountNumber string,
	baseAmount string,
	feeAmount string,
	totalAmount string,
	status string,
	createdAt time.Time,
	updatedAt time.Time,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	if paymentID.Valid {
		pid, pidErr := kernel.UUIDFromBytes(paymentID.UUID[:])
		if pidErr != nil {
			return GetOrderQueryResponse{}, pidErr
		}
		resp.PaymentID = &pid
	}

	resp.ProviderID, err = kernel.UUIDFromBytes(providerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ProviderName = providerName

	resp.AccountNumber, err = kernel.NewAccountNumber(accountNumber)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.BaseAmount, err = kernel.MoneyFromString(baseAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.FeeAmount, err = kernel.MoneyFromString(feeAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.TotalAmount, err = kernel.MoneyFromString(totalAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Status, err = order.StatusFromString(status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt
	return resp, nil
}
