package ports

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/company"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for company aggregates.
type CompanyRepository interface {
	// Add persists a new company aggregate to storage.
	Add(ctx context.Context, company *company.Company) error

	// Update persists changes to an existing company aggregate.
	Update(ctx context.Context, company *company.Company) error

	// Get retrieves a company aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)
}
