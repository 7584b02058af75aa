// Package ports defines the driven-side interfaces of the dispatch domain:
// repositories, the unit of work and the notification gateway. These
// interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/courier"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier with a row lock held until the
	// surrounding transaction ends. Every read that precedes a flip of
	// the availability flag must go through here, so concurrent claims
	// by the same courier serialize instead of both seeing a stale
	// available snapshot.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailableApproved retrieves every approved courier currently
	// marked available. This is the pool that new orders are announced to.
	GetAllAvailableApproved(ctx context.Context) ([]*courier.Courier, error)
}
