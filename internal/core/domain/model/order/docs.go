// Package order contains the Order aggregate and its lifecycle state
// machine. An order is created in NEW status after the provider's partner
// API validates the load, and transitions exactly once to SUCCESS or FAILED
// when disbursement is attempted. Terminal states admit no further
// transitions.
package order
