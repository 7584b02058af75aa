package ports

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
)

// ServiceAreaRepository defines the persistence contract for service areas.
type ServiceAreaRepository interface {
	// Add persists a new service area to storage.
	Add(ctx context.Context, area *servicearea.ServiceArea) error

	// Update persists changes to an existing service area.
	Update(ctx context.Context, area *servicearea.ServiceArea) error

	// Get retrieves a service area by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*servicearea.ServiceArea, error)

	// GetAllActive retrieves every active service area. Callers resolve
	// geofence membership in memory over this set.
	GetAllActive(ctx context.Context) ([]*servicearea.ServiceArea, error)
}
