// Package provider contains the Provider aggregate: a disbursement partner
// identified by its validate/disburse endpoints and a fixed fee. Providers
// are created once via registration and are read-only thereafter.
package provider
