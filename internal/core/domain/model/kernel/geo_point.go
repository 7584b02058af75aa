package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean radius of the Earth used by DistanceKm.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint to ensure
// coordinates are within valid geographic bounds.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate pair with validated latitude
// and longitude. GeoPoint is an immutable value object; the zero value is
// invalid and fails validation - use the constructor to create instances.
//
// GeoPoint is used for order pickup and delivery locations and as the vertex
// type for service-area polygons.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(41.0082, 28.9784)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(p) // Output: GeoPoint(41.008200,28.978400)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [MinLatitude..MaxLatitude] and longitude within
// [MinLongitude..MaxLongitude]. Returns an error if either coordinate is
// outside its valid range.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value of GeoPoint is invalid and fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String returns a human-readable representation in the format
// "GeoPoint(lat,lng)". Implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula. Both points must be properly
// constructed for the calculation to succeed.
//
// Example:
//
//	istanbul, _ := kernel.NewGeoPoint(41.0082, 28.9784)
//	ankara, _ := kernel.NewGeoPoint(39.9334, 32.8597)
//	km, _ := istanbul.DistanceKm(ankara) // ≈ 351
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}
	p.lng = lng
	return nil
}
