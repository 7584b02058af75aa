package ports

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"
)

// PricingRuleRepository defines the persistence contract for pricing rules.
type PricingRuleRepository interface {
	// Add persists a new pricing rule to storage.
	Add(ctx context.Context, rule *pricing.Rule) error

	// Update persists changes to an existing pricing rule.
	Update(ctx context.Context, rule *pricing.Rule) error

	// Get retrieves a pricing rule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error)

	// GetActiveGlobal retrieves the single active rule that is not bound
	// to a service area. Returns errs.ObjectNotFoundError when the
	// platform has none configured.
	GetActiveGlobal(ctx context.Context) (*pricing.Rule, error)
}
