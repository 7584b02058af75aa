package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// CourierRepository returns a CourierRepository bound to the current transaction.
	CourierRepository() CourierRepository

	// CompanyRepository returns a CompanyRepository bound to the current transaction.
	CompanyRepository() CompanyRepository

	// ServiceAreaRepository returns a ServiceAreaRepository bound to the current transaction.
	ServiceAreaRepository() ServiceAreaRepository

	// PricingRuleRepository returns a PricingRuleRepository bound to the current transaction.
	PricingRuleRepository() PricingRuleRepository

	// CompanyBalanceRepository returns a CompanyBalanceRepository bound to the current transaction.
	CompanyBalanceRepository() CompanyBalanceRepository

	// DailyReconciliationRepository returns a DailyReconciliationRepository bound to the current transaction.
	DailyReconciliationRepository() DailyReconciliationRepository
}
