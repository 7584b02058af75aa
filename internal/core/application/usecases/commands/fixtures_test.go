package commands_test

import (
	"testing"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/company"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/courier"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func approvedCompany(t *testing.T, id kernel.UUID) *company.Company {
	t.Helper()
	c, err := company.RestoreCompany(id, "Acme Kurye", "+902121112233", company.Approved)
	require.NoError(t, err)
	return c
}

func pendingCompany(t *testing.T, id kernel.UUID) *company.Company {
	t.Helper()
	c, err := company.RestoreCompany(id, "Acme Kurye", "+902121112233", company.Pending)
	require.NoError(t, err)
	return c
}

func availableCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(id, "Mehmet", "+905551112233", courier.Approved, true, 0, 0, 0)
	require.NoError(t, err)
	return c
}

func pendingCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(id, "Mehmet", "+905551112233", courier.Pending, true, 0, 0, 0)
	require.NoError(t, err)
	return c
}

func testPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func testDetails(t *testing.T) order.Details {
	t.Helper()
	return order.Details{
		RecipientName:   "Ali Veli",
		RecipientPhone:  "+905551112233",
		PickupPoint:     testPoint(t, 40.95, 29.02),
		DeliveryPoint:   testPoint(t, 40.96, 29.05),
		PickupAddress:   "Askerocagi Cd. 1",
		DeliveryAddress: "Bagdat Cd. 99",
		PackageType:     order.PackageTypeParcel,
		PackageSize:     order.PackageSizeMedium,
		DeliveryType:    order.DeliveryTypeStandard,
		Urgency:         order.UrgencyNormal,
	}
}

func testCharge() order.Charge {
	return order.Charge{
		DistanceKm:       decimal.NewFromInt(10),
		EstimatedTimeMin: 30,
		Price:            decimal.NewFromFloat(54.00),
		Commission:       decimal.NewFromFloat(8.10),
		CourierEarning:   decimal.NewFromFloat(45.90),
	}
}

func pendingOrder(t *testing.T, companyID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "KB-20260830-000001", companyID,
		testDetails(t), testCharge(), true, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	return o
}

func acceptedOrder(t *testing.T, companyID, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t, companyID)
	require.NoError(t, o.Accept(courierID, time.Now()))
	return o
}

func inProgressOrder(t *testing.T, companyID, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := acceptedOrder(t, companyID, courierID)
	require.NoError(t, o.Start(time.Now()))
	return o
}

func deliveredOrder(t *testing.T, companyID, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := inProgressOrder(t, companyID, courierID)
	require.NoError(t, o.Deliver(time.Now()))
	return o
}

func coveringArea(t *testing.T) *servicearea.ServiceArea {
	t.Helper()
	poly, err := servicearea.NewPolygon([]kernel.GeoPoint{
		testPoint(t, 40.90, 29.00),
		testPoint(t, 40.90, 29.10),
		testPoint(t, 41.00, 29.10),
		testPoint(t, 41.00, 29.00),
	})
	require.NoError(t, err)

	a, err := servicearea.NewServiceArea(
		kernel.NewUUID(), "Kadikoy", "Istanbul", "Kadikoy", poly,
		decimal.NewFromInt(15), decimal.NewFromInt(3), nil, 0)
	require.NoError(t, err)
	return a
}

func activeGlobalRule(t *testing.T) *pricing.Rule {
	t.Helper()
	r, err := pricing.NewRule(
		kernel.NewUUID(), nil,
		decimal.NewFromInt(10), decimal.NewFromInt(2), decimal.NewFromInt(20))
	require.NoError(t, err)
	return r
}
