// Package kernel contains the shared value objects of the disbursement
// domain: UUID identifiers, exact-decimal Money amounts and partner
// AccountNumber values. All types in this package are immutable and must be
// created through their constructor functions; zero values fail Validate().
package kernel
