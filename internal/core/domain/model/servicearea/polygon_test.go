package servicearea_test

import (
	"testing"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

// squarePolygon builds a 0.1-degree square around Istanbul's center.
func squarePolygon(t *testing.T) servicearea.Polygon {
	t.Helper()
	poly, err := servicearea.NewPolygon([]kernel.GeoPoint{
		mustPoint(t, 41.00, 28.90),
		mustPoint(t, 41.10, 28.90),
		mustPoint(t, 41.10, 29.00),
		mustPoint(t, 41.00, 29.00),
	})
	require.NoError(t, err)
	return poly
}

func TestNewPolygon_RequiresThreeVertices(t *testing.T) {
	_, err := servicearea.NewPolygon([]kernel.GeoPoint{
		mustPoint(t, 41.00, 28.90),
		mustPoint(t, 41.10, 28.90),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPolygon_RejectsUnconstructedVertex(t *testing.T) {
	var zero kernel.GeoPoint
	_, err := servicearea.NewPolygon([]kernel.GeoPoint{
		mustPoint(t, 41.00, 28.90),
		mustPoint(t, 41.10, 28.90),
		zero,
	})
	require.Error(t, err)
}

func TestNewPolygon_CopiesInput(t *testing.T) {
	vertices := []kernel.GeoPoint{
		mustPoint(t, 41.00, 28.90),
		mustPoint(t, 41.10, 28.90),
		mustPoint(t, 41.10, 29.00),
	}
	poly, err := servicearea.NewPolygon(vertices)
	require.NoError(t, err)

	vertices[0] = mustPoint(t, 0, 0)
	assert.InDelta(t, 41.00, poly.Vertices()[0].Lat(), 1e-9)
}

func TestPolygon_Contains(t *testing.T) {
	poly := squarePolygon(t)

	tests := []struct {
		name   string
		point  kernel.GeoPoint
		inside bool
	}{
		{"center_inside", mustPoint(t, 41.05, 28.95), true},
		{"near_west_edge_inside", mustPoint(t, 41.05, 28.901), true},
		{"north_of_polygon", mustPoint(t, 41.20, 28.95), false},
		{"south_of_polygon", mustPoint(t, 40.90, 28.95), false},
		{"east_of_polygon", mustPoint(t, 41.05, 29.10), false},
		{"west_of_polygon", mustPoint(t, 41.05, 28.80), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inside, err := poly.Contains(tt.point)
			require.NoError(t, err)
			assert.Equal(t, tt.inside, inside)
		})
	}
}

func TestPolygon_Contains_ConcaveShape(t *testing.T) {
	// L-shaped polygon: the notch at the top-right is outside.
	poly, err := servicearea.NewPolygon([]kernel.GeoPoint{
		mustPoint(t, 41.00, 28.90),
		mustPoint(t, 41.10, 28.90),
		mustPoint(t, 41.10, 28.95),
		mustPoint(t, 41.05, 28.95),
		mustPoint(t, 41.05, 29.00),
		mustPoint(t, 41.00, 29.00),
	})
	require.NoError(t, err)

	inNotch, err := poly.Contains(mustPoint(t, 41.08, 28.98))
	require.NoError(t, err)
	assert.False(t, inNotch)

	inBody, err := poly.Contains(mustPoint(t, 41.02, 28.98))
	require.NoError(t, err)
	assert.True(t, inBody)
}

func TestPolygon_ZeroValueIsInvalid(t *testing.T) {
	var poly servicearea.Polygon
	require.Error(t, poly.Validate())

	_, err := poly.Contains(mustPoint(t, 41.05, 28.95))
	require.Error(t, err)
}
