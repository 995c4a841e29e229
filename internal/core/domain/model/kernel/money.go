package kernel

import (
	"fmt"

	"disbursement/internal/pkg/errs"
	"disbursement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyExponent is the number of fraction digits a monetary amount carries.
// All amounts in the system are fixed-point decimals with 2 fraction digits.
const MoneyExponent = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney or
// MoneyFromString to guarantee exactness and scale.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromString constructors")

// Money represents a monetary amount as an exact fixed-point decimal with
// 2 fraction digits. Money is an immutable value object: arithmetic returns
// new values and never mutates the receiver. Amounts are never negative;
// strict positivity where required (fees, base amounts) is enforced by the
// aggregates that hold them via IsPositive.
//
// Exact decimal arithmetic is used throughout so that
// totalAmount == baseAmount + feeAmount holds without rounding drift.
//
// Example:
//
//	base, _ := kernel.MoneyFromString("100.00")
//	fee, _ := kernel.MoneyFromString("10.00")
//	total := base.Add(fee)
//	fmt.Println(total) // Output: 110.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must not be negative and must not carry more than
// MoneyExponent fraction digits. Returns an error otherwise.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}
	if amount.Exponent() < -MoneyExponent {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d fraction digits", amount, MoneyExponent),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money value from its decimal string
// representation, e.g. "110.00". Returns an error if the string is not a
// valid decimal or violates the Money constraints.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Add returns the exact sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values for numeric equality.
// Scale does not matter: 110 and 110.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with exactly MoneyExponent fraction
// digits, e.g. "110.00". Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyExponent)
}

// Validate checks that the Money value was created through a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
