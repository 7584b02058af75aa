package servicearea

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrServiceAreaIsNotConstructed is returned when a ServiceArea instance was
// not created through the NewServiceArea factory method.
var ErrServiceAreaIsNotConstructed = errors.New(
	"ServiceArea must be created via NewServiceArea constructor")

// ServiceArea represents a geographic zone in which the platform operates.
// It is the aggregate root for geofencing and zone-level pricing.
//
// ServiceArea follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Boundary polygon has at least MinPolygonVertices vertices
//   - Rates are never negative
//   - Can only be created through NewServiceArea or RestoreServiceArea
//
// When two active areas overlap, the one with the higher priority wins
// resolution; this ordering is enforced by the geofence resolver, not here.
type ServiceArea struct {
	id            kernel.UUID
	name          string
	city          string
	district      string
	boundaries    Polygon
	basePrice     decimal.Decimal
	pricePerKm    decimal.Decimal
	maxDistanceKm *decimal.Decimal
	priority      int
	isActive      bool

	isConstructed bool
}

// NewServiceArea creates a new active ServiceArea with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable zone name (required)
//   - city, district: administrative location of the zone
//   - boundaries: validated boundary polygon
//   - basePrice, pricePerKm: zone rates; both zero means the zone carries no
//     pricing of its own and the global pricing rule applies
//   - maxDistanceKm: optional cap on deliverable distance within the zone
//   - priority: tie-break for overlapping zones, higher wins
func NewServiceArea(
	id kernel.UUID,
	name string,
	city string,
	district string,
	boundaries Polygon,
	basePrice decimal.Decimal,
	pricePerKm decimal.Decimal,
	maxDistanceKm *decimal.Decimal,
	priority int,
) (*ServiceArea, error) {
	area := &ServiceArea{
		city:          city,
		district:      district,
		priority:      priority,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		area.setID(id),
		area.setName(name),
		area.setBoundaries(boundaries),
		area.setRates(basePrice, pricePerKm),
		area.setMaxDistanceKm(maxDistanceKm),
	); err != nil {
		return nil, err
	}

	return area, nil
}

// RestoreServiceArea reconstructs a ServiceArea from persistence, including
// its activation state. Used only by repository implementations.
func RestoreServiceArea(
	id kernel.UUID,
	name string,
	city string,
	district string,
	boundaries Polygon,
	basePrice decimal.Decimal,
	pricePerKm decimal.Decimal,
	maxDistanceKm *decimal.Decimal,
	priority int,
	isActive bool,
) (*ServiceArea, error) {
	area, err := NewServiceArea(id, name, city, district, boundaries, basePrice, pricePerKm, maxDistanceKm, priority)
	if err != nil {
		return nil, err
	}

	area.isActive = isActive
	return area, nil
}

// Validate ensures the ServiceArea was properly constructed.
func (a *ServiceArea) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrServiceAreaIsNotConstructed
	}
	return nil
}

// ID returns the service area's unique identifier.
func (a *ServiceArea) ID() kernel.UUID {
	return a.id
}

// Name returns the zone name.
func (a *ServiceArea) Name() string {
	return a.name
}

// City returns the city the zone belongs to.
func (a *ServiceArea) City() string {
	return a.city
}

// District returns the district the zone belongs to.
func (a *ServiceArea) District() string {
	return a.district
}

// Boundaries returns the zone's boundary polygon.
func (a *ServiceArea) Boundaries() Polygon {
	return a.boundaries
}

// BasePrice returns the zone's base delivery price.
func (a *ServiceArea) BasePrice() decimal.Decimal {
	return a.basePrice
}

// PricePerKm returns the zone's per-kilometer rate.
func (a *ServiceArea) PricePerKm() decimal.Decimal {
	return a.pricePerKm
}

// MaxDistanceKm returns the zone's optional distance cap, or nil when the
// zone accepts deliveries of any distance.
func (a *ServiceArea) MaxDistanceKm() *decimal.Decimal {
	return a.maxDistanceKm
}

// Priority returns the overlap tie-break priority; higher wins.
func (a *ServiceArea) Priority() int {
	return a.priority
}

// IsActive reports whether the zone participates in geofence resolution.
func (a *ServiceArea) IsActive() bool {
	return a.isActive
}

// HasOwnPricing reports whether the zone carries its own rates. Zones with
// both rates at zero defer to the active global pricing rule.
func (a *ServiceArea) HasOwnPricing() bool {
	return !a.basePrice.IsZero() || !a.pricePerKm.IsZero()
}

// Contains reports whether the given point lies inside the zone's boundary.
func (a *ServiceArea) Contains(point kernel.GeoPoint) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	return a.boundaries.Contains(point)
}

// Deactivate removes the zone from geofence resolution without deleting it.
func (a *ServiceArea) Deactivate() {
	a.isActive = false
}

// Activate returns the zone to geofence resolution.
func (a *ServiceArea) Activate() {
	a.isActive = true
}

func (a *ServiceArea) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *ServiceArea) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *ServiceArea) setBoundaries(boundaries Polygon) error {
	if err := boundaries.Validate(); err != nil {
		return err
	}
	a.boundaries = boundaries
	return nil
}

func (a *ServiceArea) setRates(basePrice, pricePerKm decimal.Decimal) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidError("basePrice")
	}
	if pricePerKm.IsNegative() {
		return errs.NewValueIsInvalidError("pricePerKm")
	}
	a.basePrice = basePrice
	a.pricePerKm = pricePerKm
	return nil
}

func (a *ServiceArea) setMaxDistanceKm(maxDistanceKm *decimal.Decimal) error {
	if maxDistanceKm != nil && !maxDistanceKm.IsPositive() {
		return errs.NewValueIsInvalidError("maxDistance")
	}
	a.maxDistanceKm = maxDistanceKm
	return nil
}
