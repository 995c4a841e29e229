package order

import (
	"errors"
	"time"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a single load-and-disburse transaction. It is the
// aggregate root that owns the order lifecycle from creation through
// disbursement.
//
// Order maintains these invariants:
//   - Must have valid identifiers, account number and amounts
//   - baseAmount is strictly positive, feeAmount is strictly positive
//   - totalAmount == baseAmount + feeAmount for the lifetime of the order
//   - feeAmount and providerName are snapshots taken at creation time and
//     are never re-read from the provider
//   - status moves NEW -> SUCCESS | FAILED exactly once, via Disburse
//   - paymentID is absent until disbursement and set exactly once
//
// The struct uses private fields to enforce encapsulation; instances can
// only be created through NewOrder (new orders) or RestoreOrder
// (reconstruction from persistence).
type Order struct {
	id            kernel.UUID
	paymentID     *kernel.UUID
	providerID    kernel.UUID
	providerName  string
	accountNumber kernel.AccountNumber
	baseAmount    kernel.Money
	feeAmount     kernel.Money
	totalAmount   kernel.Money
	status        Status
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in New status. This is the only way to create
// an order for a fresh load request, ensuring all business invariants hold.
//
// The provider name and fee are captured as creation-time snapshots; the
// total amount is computed exactly once as baseAmount + feeAmount using
// exact decimal arithmetic. Both timestamps are set here explicitly, keeping
// persistence a dumb read/write boundary.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - providerID: identifier of the provider that priced the order
//   - providerName: provider display name snapshot (must be non-empty)
//   - accountNumber: validated destination account
//   - baseAmount: requested transfer amount (must be strictly positive)
//   - feeAmount: provider fee snapshot (must be strictly positive)
//
// Example:
//
//	base, _ := kernel.MoneyFromString("100.00")
//	fee, _ := kernel.MoneyFromString("10.00")
//	o, err := order.NewOrder(kernel.NewUUID(), providerID, "Globe", account, base, fee)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(o.TotalAmount()) // Output: 110.00
func NewOrder(
	id kernel.UUID,
	providerID kernel.UUID,
	providerName string,
	accountNumber kernel.AccountNumber,
	baseAmount kernel.Money,
	feeAmount kernel.Money,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProviderID(providerID),
		o.setProviderName(providerName),
		o.setAccountNumber(accountNumber),
		o.setAmounts(baseAmount, feeAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. It revalidates
// every field, the status value, and the status/payment consistency rule, so
// corrupted rows cannot become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	paymentID *kernel.UUID,
	providerID kernel.UUID,
	providerName string,
	accountNumber kernel.AccountNumber,
	baseAmount kernel.Money,
	feeAmount kernel.Money,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProviderID(providerID),
		o.setProviderName(providerName),
		o.setAccountNumber(accountNumber),
		o.setAmounts(baseAmount, feeAmount),
		status.Validate(),
		status.ValidateCanHavePayment(paymentID != nil),
	); err != nil {
		return nil, err
	}

	if paymentID != nil {
		if err := paymentID.Validate(); err != nil {
			return nil, err
		}
		p := *paymentID
		o.paymentID = &p
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PaymentID returns the external payment reference recorded at disbursement
// time. Returns nil if disbursement has not been attempted.
func (o *Order) PaymentID() *kernel.UUID {
	return o.paymentID
}

// ProviderID returns the identifier of the provider that priced the order.
func (o *Order) ProviderID() kernel.UUID {
	return o.providerID
}

// ProviderName returns the provider name snapshot taken at creation time.
func (o *Order) ProviderName() string {
	return o.providerName
}

// AccountNumber returns the destination account for the load.
func (o *Order) AccountNumber() kernel.AccountNumber {
	return o.accountNumber
}

// BaseAmount returns the requested transfer amount.
func (o *Order) BaseAmount() kernel.Money {
	return o.baseAmount
}

// FeeAmount returns the provider fee snapshot taken at creation time.
func (o *Order) FeeAmount() kernel.Money {
	return o.feeAmount
}

// TotalAmount returns baseAmount + feeAmount, computed once at creation.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp (set once, UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Disburse records the outcome of a disbursement attempt.
//
// Business rules:
//   - The order must be in New status; any other origin fails with an
//     illegal-state error naming the current status, and the order is left
//     unchanged.
//   - The payment id is recorded unconditionally, regardless of outcome, so
//     FAILED orders keep the reference for reconciliation.
//   - success true yields Success, false yields Failed. Both are terminal.
//
// Example:
//
//	paymentID := kernel.NewUUID()
//	if err := o.Disburse(paymentID, true); err != nil {
//	    // order was not in NEW status
//	}
func (o *Order) Disburse(paymentID kernel.UUID, success bool) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Disburse(success)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentID = &paymentID
	o.updatedAt = time.Now().UTC()
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProviderID validates and sets the provider reference.
// This is a private method used only during construction.
func (o *Order) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}
	o.providerID = providerID
	return nil
}

// setProviderName validates and sets the provider name snapshot.
// This is a private method used only during construction.
func (o *Order) setProviderName(providerName string) error {
	if providerName == "" {
		return errs.NewValueIsRequiredError("providerName")
	}
	o.providerName = providerName
	return nil
}

// setAccountNumber validates and sets the destination account.
// This is a private method used only during construction.
func (o *Order) setAccountNumber(accountNumber kernel.AccountNumber) error {
	if err := accountNumber.Validate(); err != nil {
		return err
	}
	o.accountNumber = accountNumber
	return nil
}

// setAmounts validates the monetary amounts and derives the total.
// The base amount must be strictly positive, as must the fee; the total is
// the exact decimal sum of the two. This is a private method used only
// during construction.
func (o *Order) setAmounts(baseAmount, feeAmount kernel.Money) error {
	if err := errors.Join(baseAmount.Validate(), feeAmount.Validate()); err != nil {
		return err
	}
	if !baseAmount.IsPositive() {
		return errs.NewValueIsInvalidError("baseAmount must be positive")
	}
	if !feeAmount.IsPositive() {
		return errs.NewValueIsInvalidError("feeAmount must be positive")
	}

	o.baseAmount = baseAmount
	o.feeAmount = feeAmount
	o.totalAmount = baseAmount.Add(feeAmount)
	return nil
}
