package commands

import (
	"context"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
)

// ReviewOrderPricingCommandHandler resolves an order waiting in price
// approval. Approval releases it back to pending, optionally straight into
// the courier pool; rejection ends the order and reverses the debt booked at
// creation, exactly like a cancellation does.
type ReviewOrderPricingCommandHandler struct {
	uowFactory OrderLedgerUoWFactory
	notifier   ports.NotificationPort
}

// NewReviewOrderPricingCommandHandler creates a handler for price review.
func NewReviewOrderPricingCommandHandler(
	uowFactory OrderLedgerUoWFactory,
	notifier ports.NotificationPort,
) ReviewOrderPricingCommandHandler {
	return ReviewOrderPricingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the review decision and notifies after commit.
func (h *ReviewOrderPricingCommandHandler) Handle(ctx context.Context, cmd ReviewOrderPricingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var pool []kernel.UUID
	if cmd.Approve() {
		pool, err = h.approve(ctx, uow, aggregate, cmd.Dispatch())
	} else {
		err = h.reject(ctx, uow, aggregate)
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate.IsDispatchedToCouriers() {
		h.notifier.NotifyNewOrderToCourierPool(ctx, aggregate, pool)
	}
	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)
	return nil
}

func (h *ReviewOrderPricingCommandHandler) approve(
	ctx context.Context,
	uow OrderLedgerUoW,
	aggregate *order.Order,
	dispatch bool,
) ([]kernel.UUID, error) {
	if err := aggregate.ApprovePricing(); err != nil {
		return nil, err
	}
	if !dispatch {
		return nil, nil
	}

	if err := aggregate.Dispatch(); err != nil {
		return nil, err
	}
	couriers, err := uow.CourierRepository().GetAllAvailableApproved(ctx)
	if err != nil {
		return nil, err
	}

	pool := make([]kernel.UUID, 0, len(couriers))
	for _, c := range couriers {
		pool = append(pool, c.ID())
	}
	return pool, nil
}

func (h *ReviewOrderPricingCommandHandler) reject(
	ctx context.Context,
	uow OrderLedgerUoW,
	aggregate *order.Order,
) error {
	if err := aggregate.RejectPricing(time.Now()); err != nil {
		return err
	}

	// the creation booking is reversed the same way a cancellation is
	ledger := services.NewLedger(
		uow.CompanyBalanceRepository(), uow.DailyReconciliationRepository())
	return ledger.OnOrderCancelled(ctx, aggregate)
}
