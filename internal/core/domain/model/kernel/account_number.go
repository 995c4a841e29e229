package kernel

import (
	"fmt"
	"regexp"

	"disbursement/internal/pkg/errs"
	"disbursement/internal/pkg/guard"
)

// accountNumberPattern is the Philippine mobile-number format partner
// providers expect: "+63" followed by exactly 10 digits.
var accountNumberPattern = regexp.MustCompile(`^\+63\d{10}$`)

// ErrAccountNumberIsNotConstructed is returned when attempting to use an
// improperly initialized AccountNumber. Account numbers must be created via
// NewAccountNumber so the format is always valid.
var ErrAccountNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"account number must be created via NewAccountNumber constructor")

// AccountNumber represents the mobile account a load is credited to.
// It is an immutable value object constrained to the Philippine mobile
// format (e.g. "+639123456789"); the format is part of the partner wire
// contract and must be preserved.
//
// Example:
//
//	account, err := kernel.NewAccountNumber("+639123456789")
//	if err != nil {
//	    // handle validation error
//	}
type AccountNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewAccountNumber creates an AccountNumber from its string form.
// Returns an error when the value is empty or does not match the
// "+63" + 10 digits pattern.
func NewAccountNumber(value string) (AccountNumber, error) {
	if value == "" {
		return AccountNumber{}, errs.NewValueIsRequiredError("accountNumber")
	}
	if !accountNumberPattern.MatchString(value) {
		return AccountNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"accountNumber",
			fmt.Errorf("%q is not a valid Philippine mobile number", value),
		)
	}

	return AccountNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the account number in its wire form, e.g. "+639123456789".
func (a AccountNumber) String() string {
	return a.value
}

// IsEqual compares two account numbers for equality.
func (a AccountNumber) IsEqual(other AccountNumber) bool {
	return a.value == other.value
}

// Validate checks that the AccountNumber was created through its
// constructor. Returns ErrAccountNumberIsNotConstructed otherwise.
func (a AccountNumber) Validate() error {
	return a.guard.Validate(ErrAccountNumberIsNotConstructed)
}
