package services

import (
	"errors"
	"sort"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
)

// ErrOutOfServiceArea is returned when a point falls outside every active
// service area and no global pricing rule can cover the order either.
var ErrOutOfServiceArea = errors.New("point is outside all active service areas")

// GeofenceResolver is a domain service that maps a geographic point onto the
// service area covering it.
//
// Business rules:
//   - Only active areas participate in resolution
//   - Overlapping areas are disambiguated by priority, highest first
//   - Ties keep the caller's input order, so the outcome never depends on
//     map iteration order
type GeofenceResolver struct{}

// NewGeofenceResolver creates a new GeofenceResolver instance.
func NewGeofenceResolver() GeofenceResolver {
	return GeofenceResolver{}
}

// Resolve returns the highest-priority active service area containing point,
// or ErrOutOfServiceArea when none does.
func (g GeofenceResolver) Resolve(
	point kernel.GeoPoint,
	areas []*servicearea.ServiceArea,
) (*servicearea.ServiceArea, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]*servicearea.ServiceArea, 0, len(areas))
	for _, a := range areas {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if a.IsActive() {
			candidates = append(candidates, a)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority() > candidates[j].Priority()
	})

	for _, a := range candidates {
		inside, err := a.Contains(point)
		if err != nil {
			return nil, err
		}
		if inside {
			return a, nil
		}
	}

	return nil, ErrOutOfServiceArea
}
