package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCompanyNotApproved is returned when a company that is not approved
// tries to create an order.
var ErrCompanyNotApproved = errors.New("company is not approved")

// orderNumberPrefix starts every human-readable order number.
const orderNumberPrefix = "KB"

// CreateOrderCommandHandler handles order creation end to end: company
// approval check, geofence resolution, pricing, ledger booking and the
// post-commit announcement to the courier pool.
//
// Channels whose source tag is registered as geofence-exempt skip zone
// resolution and are priced at a fixed flat amount instead.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	resolver   services.GeofenceResolver
	engine     services.PricingEngine
	notifier   ports.NotificationPort

	flatPrice     decimal.Decimal
	exemptSources map[string]struct{}
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// exemptSources lists the channel source tags priced at flatPrice without
// geofencing.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	resolver services.GeofenceResolver,
	engine services.PricingEngine,
	notifier ports.NotificationPort,
	flatPrice decimal.Decimal,
	exemptSources []string,
) CreateOrderCommandHandler {
	exempt := make(map[string]struct{}, len(exemptSources))
	for _, s := range exemptSources {
		exempt[s] = struct{}{}
	}

	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		resolver:      resolver,
		engine:        engine,
		notifier:      notifier,
		flatPrice:     flatPrice,
		exemptSources: exempt,
	}
}

// Handle processes the order creation command and returns the created order.
// The notification to the courier pool fires only after the transaction has
// committed and never affects the outcome.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	company, err := uow.CompanyRepository().Get(ctx, cmd.CompanyID())
	if err != nil {
		return nil, err
	}
	if !company.IsApproved() {
		return nil, ErrCompanyNotApproved
	}

	quote, err := h.quote(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	aggregate, err := h.buildOrder(cmd, quote, now)
	if err != nil {
		return nil, err
	}

	// a taken number gets one fresh draw before the insert; a failed
	// insert would abort the transaction, so the unique index stays the
	// guard of last resort only
	_, lookupErr := uow.OrderRepository().GetByOrderNumber(ctx, aggregate.OrderNumber())
	switch {
	case lookupErr == nil:
		if aggregate, err = h.buildOrder(cmd, quote, now); err != nil {
			return nil, err
		}
	case !errors.Is(lookupErr, errs.ErrObjectNotFound):
		return nil, lookupErr
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	ledger := services.NewLedger(
		uow.CompanyBalanceRepository(), uow.DailyReconciliationRepository())
	if err = ledger.OnOrderCreated(ctx, aggregate); err != nil {
		return nil, err
	}

	pool, err := h.courierPool(ctx, uow, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if aggregate.IsDispatchedToCouriers() {
		h.notifier.NotifyNewOrderToCourierPool(ctx, aggregate, pool)
	}
	return aggregate, nil
}

func (h *CreateOrderCommandHandler) buildOrder(
	cmd CreateOrderCommand,
	quote services.Quote,
	now time.Time,
) (*order.Order, error) {
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		generateOrderNumber(now),
		cmd.CompanyID(),
		cmd.Details(),
		quote.Charge(),
		cmd.DispatchToCouriers(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if cmd.RequiresApproval() {
		if err = aggregate.HoldForApproval(); err != nil {
			return nil, err
		}
	}

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) quote(
	ctx context.Context,
	uow CreateOrderUoW,
	cmd CreateOrderCommand,
) (services.Quote, error) {
	details := cmd.Details()
	req := services.QuoteRequest{
		Pickup:             details.PickupPoint,
		Delivery:           details.DeliveryPoint,
		PackageSize:        details.PackageSize,
		DeliveryType:       details.DeliveryType,
		Urgency:            details.Urgency,
		ExternalDistanceKm: cmd.ExternalDistanceKm(),
		ExternalTimeMin:    cmd.ExternalTimeMin(),
	}

	if _, exempt := h.exemptSources[details.Source]; exempt {
		return h.engine.Flat(req, h.flatPrice)
	}

	areas, err := uow.ServiceAreaRepository().GetAllActive(ctx)
	if err != nil {
		return services.Quote{}, err
	}

	// both ends must be serviceable; the delivery side decides the rates
	if _, err = h.resolver.Resolve(details.PickupPoint, areas); err != nil {
		return services.Quote{}, err
	}
	deliveryArea, err := h.resolver.Resolve(details.DeliveryPoint, areas)
	if err != nil {
		return services.Quote{}, err
	}
	req.Area = deliveryArea

	rule, err := uow.PricingRuleRepository().GetActiveGlobal(ctx)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return services.Quote{}, err
	}
	req.GlobalRule = rule

	return h.engine.Price(req)
}

// courierPool reads the available courier IDs inside the transaction so the
// post-commit announcement does not need a second one.
func (h *CreateOrderCommandHandler) courierPool(
	ctx context.Context,
	uow CreateOrderUoW,
	aggregate *order.Order,
) ([]kernel.UUID, error) {
	if !aggregate.IsDispatchedToCouriers() {
		return nil, nil
	}

	couriers, err := uow.CourierRepository().GetAllAvailableApproved(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(couriers))
	for _, c := range couriers {
		ids = append(ids, c.ID())
	}
	return ids, nil
}

// generateOrderNumber builds a human-readable order number of the form
// KB-YYYYMMDD-XXXXXX. The random suffix is not guaranteed unique; the
// database's unique constraint on order numbers is the real guard.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%06d",
		orderNumberPrefix, now.Format("20060102"), rand.IntN(1_000_000))
}
