package servicearea

import (
	"fmt"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

// MinPolygonVertices is the minimum number of vertices a service-area
// boundary must have to form a simple polygon.
const MinPolygonVertices = 3

// ErrPolygonIsNotConstructed is returned when attempting to use an improperly
// initialized Polygon. Polygons must be created via NewPolygon.
var ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
	"polygon must be created via NewPolygon constructor")

// Polygon is an immutable value object representing a simple polygon on the
// Earth's surface, defined by an ordered list of geographic vertices. The
// boundary is implicitly closed: the last vertex connects back to the first.
//
// Polygon replaces the loosely-typed boundary blobs of upstream channel
// payloads with a strongly-typed representation validated at construction.
//
// Example:
//
//	a, _ := kernel.NewGeoPoint(41.00, 28.90)
//	b, _ := kernel.NewGeoPoint(41.10, 28.90)
//	c, _ := kernel.NewGeoPoint(41.05, 29.05)
//	poly, err := servicearea.NewPolygon([]kernel.GeoPoint{a, b, c})
//	if err != nil {
//	    // handle validation error
//	}
type Polygon struct { //nolint:recvcheck //using for validation
	vertices []kernel.GeoPoint
	guard    guard.ConstructorGuard
}

// NewPolygon creates a Polygon from an ordered list of vertices.
// The list must contain at least MinPolygonVertices properly constructed
// points. The input slice is copied; later mutation of the caller's slice
// does not affect the polygon.
func NewPolygon(vertices []kernel.GeoPoint) (Polygon, error) {
	if len(vertices) < MinPolygonVertices {
		return Polygon{}, errs.NewValueIsInvalidErrorWithCause("boundaries",
			fmt.Errorf("polygon requires at least %d vertices, got %d", MinPolygonVertices, len(vertices)))
	}

	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Polygon{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("boundaries[%d]", i), err)
		}
	}

	copied := make([]kernel.GeoPoint, len(vertices))
	copy(copied, vertices)

	return Polygon{
		vertices: copied,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Polygon was properly constructed via NewPolygon.
func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the polygon's ordered vertex list.
func (p Polygon) Vertices() []kernel.GeoPoint {
	copied := make([]kernel.GeoPoint, len(p.vertices))
	copy(copied, p.vertices)
	return copied
}

// Contains reports whether the given point lies inside the polygon.
//
// The test is the classic ray-casting algorithm: a horizontal ray is cast
// eastward from the point and the number of boundary edges it crosses is
// counted; an odd count means the point is inside. Points exactly on an edge
// may land on either side and callers must not rely on edge behavior.
func (p Polygon) Contains(point kernel.GeoPoint) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := point.Validate(); err != nil {
		return false, err
	}

	inside := false
	j := len(p.vertices) - 1
	for i := range p.vertices {
		vi := p.vertices[i]
		vj := p.vertices[j]

		if (vi.Lat() > point.Lat()) != (vj.Lat() > point.Lat()) {
			crossLng := (vj.Lng()-vi.Lng())*(point.Lat()-vi.Lat())/(vj.Lat()-vi.Lat()) + vi.Lng()
			if point.Lng() < crossLng {
				inside = !inside
			}
		}
		j = i
	}

	return inside, nil
}
