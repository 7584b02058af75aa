package pricing_test

import (
	"testing"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule_Global(t *testing.T) {
	rule, err := pricing.NewRule(
		kernel.NewUUID(), nil,
		decimal.NewFromInt(20), decimal.NewFromFloat(2.5), decimal.NewFromInt(25))
	require.NoError(t, err)
	require.NoError(t, rule.Validate())

	assert.True(t, rule.IsGlobal())
	assert.Nil(t, rule.ServiceAreaID())
	assert.True(t, rule.IsActive())
	assert.True(t, rule.MinimumPrice().Equal(decimal.NewFromInt(25)))
}

func TestNewRule_ZoneBound(t *testing.T) {
	areaID := kernel.NewUUID()
	rule, err := pricing.NewRule(
		kernel.NewUUID(), &areaID,
		decimal.NewFromInt(15), decimal.NewFromInt(3), decimal.Zero)
	require.NoError(t, err)

	assert.False(t, rule.IsGlobal())
	assert.True(t, rule.ServiceAreaID().IsEqual(areaID))
}

func TestNewRule_Invalid(t *testing.T) {
	t.Run("negative_rate", func(t *testing.T) {
		_, err := pricing.NewRule(
			kernel.NewUUID(), nil,
			decimal.NewFromInt(-1), decimal.NewFromInt(3), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("unconstructed_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := pricing.NewRule(
			id, nil, decimal.NewFromInt(20), decimal.NewFromInt(3), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("unconstructed_area_id", func(t *testing.T) {
		var areaID kernel.UUID
		_, err := pricing.NewRule(
			kernel.NewUUID(), &areaID,
			decimal.NewFromInt(20), decimal.NewFromInt(3), decimal.Zero)
		require.Error(t, err)
	})
}

func TestRule_ZeroValueIsInvalid(t *testing.T) {
	var rule pricing.Rule
	require.Error(t, rule.Validate())
}

func TestRestoreRule_KeepsInactiveState(t *testing.T) {
	rule, err := pricing.RestoreRule(
		kernel.NewUUID(), nil,
		decimal.NewFromInt(20), decimal.NewFromInt(3), decimal.Zero, false)
	require.NoError(t, err)
	assert.False(t, rule.IsActive())
}
