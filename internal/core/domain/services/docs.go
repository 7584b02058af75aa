// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the dispatch system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - GeofenceResolver: deterministic point-to-service-area resolution
//   - PricingEngine: distance and attribute based order pricing
//   - Ledger: balance and daily reconciliation bookkeeping for order events
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
