package services_test

import (
	"testing"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func defaultEngine(t *testing.T) services.PricingEngine {
	t.Helper()
	engine, err := services.NewPricingEngine(services.DefaultCommissionRate)
	require.NoError(t, err)
	return engine
}

func pricedArea(t *testing.T, basePrice, pricePerKm string, maxKm *decimal.Decimal) *servicearea.ServiceArea {
	t.Helper()
	a, err := servicearea.NewServiceArea(
		kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy",
		square(t, 40.9, 29.0, 41.0, 29.1),
		dec(basePrice), dec(pricePerKm), maxKm, 0)
	require.NoError(t, err)
	return a
}

func globalRule(t *testing.T, basePrice, pricePerKm, minimumPrice string) *pricing.Rule {
	t.Helper()
	r, err := pricing.NewRule(kernel.NewUUID(), nil, dec(basePrice), dec(pricePerKm), dec(minimumPrice))
	require.NoError(t, err)
	return r
}

func standardRequest(t *testing.T) services.QuoteRequest {
	t.Helper()
	return services.QuoteRequest{
		Pickup:       point(t, 40.95, 29.02),
		Delivery:     point(t, 40.96, 29.05),
		PackageSize:  order.PackageSizeSmall,
		DeliveryType: order.DeliveryTypeStandard,
		Urgency:      order.UrgencyNormal,
	}
}

func TestPricingEngine_Price_MediumStandardNormal(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.Area = pricedArea(t, "15", "3", nil)
	req.GlobalRule = globalRule(t, "10", "2", "20")
	req.PackageSize = order.PackageSizeMedium
	req.ExternalDistanceKm = decPtr("10")

	quote, err := engine.Price(req)

	require.NoError(t, err)
	assert.True(t, quote.Price.Equal(dec("54.00")), "price %s", quote.Price)
	assert.True(t, quote.Commission.Equal(dec("8.10")), "commission %s", quote.Commission)
	assert.True(t, quote.CourierEarning.Equal(dec("45.90")), "earning %s", quote.CourierEarning)
	assert.Equal(t, 30, quote.EstimatedTimeMin)
	require.NotNil(t, quote.ServiceAreaID)
	assert.True(t, quote.ServiceAreaID.IsEqual(req.Area.ID()))
}

func TestPricingEngine_Price_ExpressMultipliesAndShortensTime(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.Area = pricedArea(t, "15", "3", nil)
	req.DeliveryType = order.DeliveryTypeExpress
	req.ExternalDistanceKm = decPtr("10")

	quote, err := engine.Price(req)

	require.NoError(t, err)
	// (15 + 30) * 1.5
	assert.True(t, quote.Price.Equal(dec("67.50")), "price %s", quote.Price)
	// ceil(30 * 0.7)
	assert.Equal(t, 21, quote.EstimatedTimeMin)
}

func TestPricingEngine_Price_UrgencyFactor(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.Area = pricedArea(t, "15", "3", nil)
	req.Urgency = order.UrgencyVeryUrgent
	req.ExternalDistanceKm = decPtr("10")

	quote, err := engine.Price(req)

	require.NoError(t, err)
	// (15 + 30) * 1.6
	assert.True(t, quote.Price.Equal(dec("72.00")), "price %s", quote.Price)
}

func TestPricingEngine_Price_ClampsToMinimum(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.GlobalRule = globalRule(t, "5", "1", "25")
	req.ExternalDistanceKm = decPtr("2")

	quote, err := engine.Price(req)

	require.NoError(t, err)
	// 5 + 2 = 7 clamped to 25
	assert.True(t, quote.Price.Equal(dec("25.00")), "price %s", quote.Price)
}

func TestPricingEngine_Price_ZoneWithoutRatesFallsBackToGlobalRule(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.Area = pricedArea(t, "0", "0", nil)
	req.GlobalRule = globalRule(t, "10", "2", "5")
	req.ExternalDistanceKm = decPtr("10")

	quote, err := engine.Price(req)

	require.NoError(t, err)
	// 10 + 20 from the global rule
	assert.True(t, quote.Price.Equal(dec("30.00")), "price %s", quote.Price)
	require.NotNil(t, quote.ServiceAreaID)
}

func TestPricingEngine_Price_NoZoneNoRule(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.ExternalDistanceKm = decPtr("10")

	_, err := engine.Price(req)

	assert.ErrorIs(t, err, services.ErrOutOfServiceArea)
}

func TestPricingEngine_Price_InactiveRuleDoesNotCount(t *testing.T) {
	engine := defaultEngine(t)

	rule := globalRule(t, "10", "2", "5")
	rule.Deactivate()

	req := standardRequest(t)
	req.GlobalRule = rule
	req.ExternalDistanceKm = decPtr("10")

	_, err := engine.Price(req)

	assert.ErrorIs(t, err, services.ErrOutOfServiceArea)
}

func TestPricingEngine_Price_DistanceExceeded(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.Area = pricedArea(t, "15", "3", decPtr("8"))
	req.ExternalDistanceKm = decPtr("10")

	_, err := engine.Price(req)

	assert.ErrorIs(t, err, services.ErrDistanceExceeded)
}

func TestPricingEngine_Price_DerivesDistanceFromPoints(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.Area = pricedArea(t, "15", "3", nil)
	// no external distance: haversine over a short hop inside Kadikoy

	quote, err := engine.Price(req)

	require.NoError(t, err)
	assert.True(t, quote.DistanceKm.IsPositive())
	assert.True(t, quote.DistanceKm.LessThan(dec("10")))
}

func TestPricingEngine_Price_UsesExternalTravelTime(t *testing.T) {
	engine := defaultEngine(t)

	ext := 45
	req := standardRequest(t)
	req.Area = pricedArea(t, "15", "3", nil)
	req.ExternalDistanceKm = decPtr("10")
	req.ExternalTimeMin = &ext

	quote, err := engine.Price(req)

	require.NoError(t, err)
	assert.Equal(t, 45, quote.EstimatedTimeMin)

	req.DeliveryType = order.DeliveryTypeExpress
	quote, err = engine.Price(req)
	require.NoError(t, err)
	// ceil(45 * 0.7)
	assert.Equal(t, 32, quote.EstimatedTimeMin)
}

func TestPricingEngine_Price_IndependentRoundingMayDriftOneCent(t *testing.T) {
	engine := defaultEngine(t)

	req := standardRequest(t)
	req.Area = pricedArea(t, "0.10", "0", nil)
	req.ExternalDistanceKm = decPtr("0")

	quote, err := engine.Price(req)

	require.NoError(t, err)
	drift := quote.Commission.Add(quote.CourierEarning).Sub(quote.Price).Abs()
	assert.True(t, drift.LessThanOrEqual(dec("0.01")), "drift %s", drift)
}

func TestPricingEngine_Price_MonotonicInDistance(t *testing.T) {
	engine := defaultEngine(t)

	prev := decimal.Zero
	for km := 1; km <= 20; km++ {
		req := standardRequest(t)
		req.Area = pricedArea(t, "15", "3", nil)
		d := decimal.NewFromInt(int64(km))
		req.ExternalDistanceKm = &d

		quote, err := engine.Price(req)
		require.NoError(t, err)
		assert.True(t, quote.Price.GreaterThanOrEqual(prev),
			"price decreased at %d km", km)
		prev = quote.Price
	}
}

func TestNewPricingEngine_RejectsBadRate(t *testing.T) {
	_, err := services.NewPricingEngine(dec("-0.1"))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = services.NewPricingEngine(dec("1"))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
