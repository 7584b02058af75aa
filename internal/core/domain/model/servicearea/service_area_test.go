package servicearea_test

import (
	"testing"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceArea_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	area, err := servicearea.NewServiceArea(
		id, "Kadikoy", "Istanbul", "Kadikoy",
		squarePolygon(t),
		decimal.NewFromInt(15), decimal.NewFromInt(3), nil, 10,
	)
	require.NoError(t, err)
	require.NoError(t, area.Validate())

	assert.True(t, area.ID().IsEqual(id))
	assert.Equal(t, "Kadikoy", area.Name())
	assert.Equal(t, 10, area.Priority())
	assert.True(t, area.IsActive())
	assert.True(t, area.HasOwnPricing())
	assert.Nil(t, area.MaxDistanceKm())
}

func TestNewServiceArea_Invalid(t *testing.T) {
	poly := squarePolygon(t)

	t.Run("empty_name", func(t *testing.T) {
		_, err := servicearea.NewServiceArea(
			kernel.NewUUID(), "", "Istanbul", "Kadikoy",
			poly, decimal.NewFromInt(15), decimal.NewFromInt(3), nil, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_base_price", func(t *testing.T) {
		_, err := servicearea.NewServiceArea(
			kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
			poly, decimal.NewFromInt(-1), decimal.NewFromInt(3), nil, 0)
		require.Error(t, err)
	})

	t.Run("unconstructed_polygon", func(t *testing.T) {
		var zero servicearea.Polygon
		_, err := servicearea.NewServiceArea(
			kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
			zero, decimal.NewFromInt(15), decimal.NewFromInt(3), nil, 0)
		require.Error(t, err)
	})

	t.Run("zero_max_distance", func(t *testing.T) {
		zeroKm := decimal.Zero
		_, err := servicearea.NewServiceArea(
			kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
			poly, decimal.NewFromInt(15), decimal.NewFromInt(3), &zeroKm, 0)
		require.Error(t, err)
	})
}

func TestServiceArea_HasOwnPricing(t *testing.T) {
	area, err := servicearea.NewServiceArea(
		kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
		squarePolygon(t), decimal.Zero, decimal.Zero, nil, 0)
	require.NoError(t, err)
	assert.False(t, area.HasOwnPricing())
}

func TestServiceArea_ActivationState(t *testing.T) {
	area, err := servicearea.NewServiceArea(
		kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
		squarePolygon(t), decimal.NewFromInt(15), decimal.NewFromInt(3), nil, 0)
	require.NoError(t, err)

	area.Deactivate()
	assert.False(t, area.IsActive())
	area.Activate()
	assert.True(t, area.IsActive())
}

func TestRestoreServiceArea_KeepsInactiveState(t *testing.T) {
	area, err := servicearea.RestoreServiceArea(
		kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
		squarePolygon(t), decimal.NewFromInt(15), decimal.NewFromInt(3), nil, 0, false)
	require.NoError(t, err)
	assert.False(t, area.IsActive())
}

func TestServiceArea_Contains(t *testing.T) {
	area, err := servicearea.NewServiceArea(
		kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
		squarePolygon(t), decimal.NewFromInt(15), decimal.NewFromInt(3), nil, 0)
	require.NoError(t, err)

	inside, err := area.Contains(mustPoint(t, 41.05, 28.95))
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := area.Contains(mustPoint(t, 40.00, 28.95))
	require.NoError(t, err)
	assert.False(t, outside)
}
