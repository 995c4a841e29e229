package order

import (
	"fmt"

	"disbursement/internal/pkg/errs"
)

// Status represents the lifecycle state of a disbursement order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	New ──┬──> Success
//	      └──> Failed
//
// Success and Failed are terminal: no transition leaves them.
// Status is a value object that validates state transitions and provides
// the string representations used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned when a load order is created.
	// Only orders in this status may be disbursed.
	New

	// Success indicates the provider confirmed the disbursement.
	// This is a terminal state.
	Success

	// Failed indicates the provider declined the disbursement or the
	// disbursement call failed at the transport level. This is a terminal
	// state: a failed disbursement is a recorded business outcome, not an
	// error.
	Failed
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		New:     "NEW",
		Success: "SUCCESS",
		Failed:  "FAILED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:     "NEW",
		Success: "SUCCESS",
		Failed:  "FAILED",
	}
}

// StatusFromString parses a Status from its persisted string form
// ("NEW", "SUCCESS", "FAILED"). Returns an error for any other value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Success, Failed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status: "NEW", "SUCCESS" or
// "FAILED". Invalid values return "UNKNOWN". Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Success || s == Failed
}

// ValidateDisburse checks if the status allows disbursement without
// performing the transition. Only New orders may be disbursed; attempting
// to disburse a terminal or unknown status is a contract violation
// surfaced as an illegal-state error.
func (s Status) ValidateDisburse() error {
	if s != New {
		return errs.NewIllegalStateError(fmt.Sprintf(
			"order cannot be disbursed: current status is %s, expected %s", s, New))
	}
	return nil
}

// ValidateCanHavePayment validates the consistency between order status and
// payment reference.
//
// Business rules:
//   - New orders must not carry a payment id (none was attempted yet)
//   - Success and Failed orders must carry the payment id recorded at
//     disbursement time
//
// Parameters:
//   - payment: whether the order carries a payment id
func (s Status) ValidateCanHavePayment(payment bool) error {
	if payment && !s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a payment id", s),
		)
	}

	if !payment && s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no payment id", s),
		)
	}

	return nil
}

// Disburse transitions the status to its terminal outcome.
//
// Valid transitions:
//   - New -> Success (provider confirmed the transfer)
//   - New -> Failed (provider declined or the call transport-failed)
//
// Any other origin returns an illegal-state error naming the current
// status.
func (s Status) Disburse(success bool) (Status, error) {
	if err := s.ValidateDisburse(); err != nil {
		return 0, err
	}

	if success {
		return Success, nil
	}
	return Failed, nil
}
