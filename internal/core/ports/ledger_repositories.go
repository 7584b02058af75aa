package ports

import (
	"context"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
)

// CompanyBalanceRepository defines the persistence contract for company
// balances.
type CompanyBalanceRepository interface {
	// Add persists a new balance row.
	Add(ctx context.Context, balance *ledger.CompanyBalance) error

	// Update persists changes to an existing balance row.
	Update(ctx context.Context, balance *ledger.CompanyBalance) error

	// Get retrieves a company's balance without locking it.
	Get(ctx context.Context, companyID kernel.UUID) (*ledger.CompanyBalance, error)

	// GetForUpdate retrieves a company's balance and locks the row for the
	// rest of the transaction, serializing concurrent bookings against the
	// same company.
	GetForUpdate(ctx context.Context, companyID kernel.UUID) (*ledger.CompanyBalance, error)
}

// DailyReconciliationRepository defines the persistence contract for daily
// reconciliation buckets.
type DailyReconciliationRepository interface {
	// Add persists a new bucket.
	Add(ctx context.Context, rec *ledger.DailyReconciliation) error

	// Update persists changes to an existing bucket.
	Update(ctx context.Context, rec *ledger.DailyReconciliation) error

	// Get retrieves the bucket for one company and calendar day.
	Get(ctx context.Context, companyID kernel.UUID, day time.Time) (*ledger.DailyReconciliation, error)

	// GetAllUnpaidOldestFirst retrieves a company's not-fully-paid
	// buckets ordered by day ascending. Payments settle these in order.
	GetAllUnpaidOldestFirst(ctx context.Context, companyID kernel.UUID) ([]*ledger.DailyReconciliation, error)

	// GetAllForCompany retrieves every bucket of a company, newest first.
	GetAllForCompany(ctx context.Context, companyID kernel.UUID) ([]*ledger.DailyReconciliation, error)

	// GetAllForDay retrieves every company's bucket for one calendar day.
	// Used by the nightly rebuild.
	GetAllForDay(ctx context.Context, day time.Time) ([]*ledger.DailyReconciliation, error)
}
