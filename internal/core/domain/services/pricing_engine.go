package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDistanceExceeded is returned when the delivery distance is longer than
// the matched service area allows.
var ErrDistanceExceeded = errors.New("distance exceeds the service area limit")

// DefaultCommissionRate is the platform's share of an order price unless
// configured otherwise.
var DefaultCommissionRate = decimal.NewFromFloat(0.15)

var (
	expressFactor = decimal.NewFromFloat(1.5)
	// expressTimeFactor reduces a travel-time estimate by 30% for express
	// deliveries.
	expressTimeFactor = 0.7
	// fallbackMinPerKm assumes roughly 20 km/h courier speed when no
	// external travel time is supplied.
	fallbackMinPerKm = 3.0
)

// QuoteRequest carries everything the engine needs to price one order.
//
// Area is the delivery-side service area, nil when the point resolved to
// none. GlobalRule is the single active global pricing rule, nil when the
// platform has none configured. Distance and travel time may be supplied by
// the caller (channel adapters precompute them); when absent the engine
// derives distance from the two points and travel time from the distance.
type QuoteRequest struct {
	Pickup   kernel.GeoPoint
	Delivery kernel.GeoPoint

	Area       *servicearea.ServiceArea
	GlobalRule *pricing.Rule

	PackageSize  order.PackageSize
	DeliveryType order.DeliveryType
	Urgency      order.Urgency

	ExternalDistanceKm *decimal.Decimal
	ExternalTimeMin    *int
}

// Quote is a priced order: the figures the order aggregate records at
// creation time.
type Quote struct {
	ServiceAreaID    *kernel.UUID
	DistanceKm       decimal.Decimal
	EstimatedTimeMin int
	Price            decimal.Decimal
	Commission       decimal.Decimal
	CourierEarning   decimal.Decimal
}

// Charge converts the quote into the order aggregate's charge figures.
func (q Quote) Charge() order.Charge {
	return order.Charge{
		ServiceAreaID:    q.ServiceAreaID,
		DistanceKm:       q.DistanceKm,
		EstimatedTimeMin: q.EstimatedTimeMin,
		Price:            q.Price,
		Commission:       q.Commission,
		CourierEarning:   q.CourierEarning,
	}
}

// PricingEngine is a domain service that prices orders from distance and
// delivery attributes.
//
// The calculation applies its steps in a fixed order because the result is
// money: rates first, then the package-size factor, the express factor, the
// urgency factor, and finally the minimum-price clamp. Price, commission and
// courier earning are each rounded to two decimals independently, which can
// leave commission + courierEarning one cent off the price; the order
// aggregate tolerates exactly that much drift.
type PricingEngine struct {
	commissionRate decimal.Decimal
}

// NewPricingEngine creates a PricingEngine with the given commission rate.
// The rate must lie in [0, 1).
func NewPricingEngine(commissionRate decimal.Decimal) (PricingEngine, error) {
	if commissionRate.IsNegative() || commissionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return PricingEngine{}, errs.NewValueIsOutOfRangeError(
			"commissionRate", commissionRate, 0, 1)
	}
	return PricingEngine{commissionRate: commissionRate}, nil
}

// Price computes the full quote for a request.
//
// Returns ErrOutOfServiceArea when neither a zone with its own rates nor an
// active global rule is available, and ErrDistanceExceeded when the matched
// zone caps distance below the request's.
func (e PricingEngine) Price(req QuoteRequest) (Quote, error) {
	distance, err := e.resolveDistance(req)
	if err != nil {
		return Quote{}, err
	}

	basePrice, pricePerKm, minimumPrice, err := e.resolveRates(req.Area, req.GlobalRule)
	if err != nil {
		return Quote{}, err
	}

	if req.Area != nil {
		if maxKm := req.Area.MaxDistanceKm(); maxKm != nil && distance.GreaterThan(*maxKm) {
			return Quote{}, fmt.Errorf("%w: %s km over %s km", ErrDistanceExceeded, distance, maxKm)
		}
	}

	price := basePrice.Add(distance.Mul(pricePerKm))
	price = price.Mul(req.PackageSize.Factor())
	if req.DeliveryType.IsExpress() {
		price = price.Mul(expressFactor)
	}
	price = price.Mul(req.Urgency.Factor())
	if price.LessThan(minimumPrice) {
		price = minimumPrice
	}

	commission := price.Mul(e.commissionRate)
	courierEarning := price.Sub(commission)

	quote := Quote{
		DistanceKm:       distance,
		EstimatedTimeMin: e.estimateTime(req, distance),
		Price:            price.Round(2),
		Commission:       commission.Round(2),
		CourierEarning:   courierEarning.Round(2),
	}
	if req.Area != nil {
		areaID := req.Area.ID()
		quote.ServiceAreaID = &areaID
	}
	return quote, nil
}

// Flat prices a request at a fixed amount, bypassing zone and rule rates.
// Used for channels exempt from geofencing; distance and travel time are
// still derived so the order carries real figures.
func (e PricingEngine) Flat(req QuoteRequest, flatPrice decimal.Decimal) (Quote, error) {
	if !flatPrice.IsPositive() {
		return Quote{}, errs.NewValueIsInvalidError("flatPrice")
	}

	distance, err := e.resolveDistance(req)
	if err != nil {
		return Quote{}, err
	}

	commission := flatPrice.Mul(e.commissionRate)
	courierEarning := flatPrice.Sub(commission)

	return Quote{
		DistanceKm:       distance,
		EstimatedTimeMin: e.estimateTime(req, distance),
		Price:            flatPrice.Round(2),
		Commission:       commission.Round(2),
		CourierEarning:   courierEarning.Round(2),
	}, nil
}

func (e PricingEngine) resolveDistance(req QuoteRequest) (decimal.Decimal, error) {
	if req.ExternalDistanceKm != nil {
		if req.ExternalDistanceKm.IsNegative() {
			return decimal.Zero, errs.NewValueIsInvalidError("distance")
		}
		return *req.ExternalDistanceKm, nil
	}

	km, err := req.Pickup.DistanceKm(req.Delivery)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(km), nil
}

// resolveRates picks the zone's own rates when it carries any, falling back
// to the active global rule. The minimum-price clamp always comes from the
// global rule since zones do not define one.
func (e PricingEngine) resolveRates(
	area *servicearea.ServiceArea,
	rule *pricing.Rule,
) (basePrice, pricePerKm, minimumPrice decimal.Decimal, err error) {
	ruleActive := rule != nil && rule.IsActive()
	if ruleActive {
		minimumPrice = rule.MinimumPrice()
	}

	if area != nil && area.HasOwnPricing() {
		return area.BasePrice(), area.PricePerKm(), minimumPrice, nil
	}
	if ruleActive {
		return rule.BasePrice(), rule.PricePerKm(), minimumPrice, nil
	}

	return decimal.Zero, decimal.Zero, decimal.Zero, ErrOutOfServiceArea
}

func (e PricingEngine) estimateTime(req QuoteRequest, distance decimal.Decimal) int {
	var minutes float64
	if req.ExternalTimeMin != nil && *req.ExternalTimeMin > 0 {
		minutes = float64(*req.ExternalTimeMin)
	} else {
		km, _ := distance.Float64()
		minutes = math.Ceil(km * fallbackMinPerKm)
	}

	if req.DeliveryType.IsExpress() {
		minutes = math.Ceil(minutes * expressTimeFactor)
	}
	return int(minutes)
}
