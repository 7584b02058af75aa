package commands

import (
	"context"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
)

// RebuildReconciliationsCommandHandler recomputes one day's reconciliation
// buckets from the orders of that day. The orders table is the source of
// truth; the buckets are a derived view that drifts only if a booking and
// its order ever disagree, and the rebuild squashes that drift.
type RebuildReconciliationsCommandHandler struct {
	uowFactory OrderLedgerUoWFactory
}

// NewRebuildReconciliationsCommandHandler creates a handler for the nightly
// rebuild.
func NewRebuildReconciliationsCommandHandler(uowFactory OrderLedgerUoWFactory) RebuildReconciliationsCommandHandler {
	return RebuildReconciliationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replays the day's orders into each existing bucket: every order
// created that day is booked again, deliveries and reversals reapplied, and
// the bucket's recorded payment carried over unchanged.
func (h *RebuildReconciliationsCommandHandler) Handle(ctx context.Context, cmd RebuildReconciliationsCommand) error {
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

	buckets, err := uow.DailyReconciliationRepository().GetAllForDay(ctx, cmd.Day())
	if err != nil {
		return err
	}

	from := cmd.Day()
	to := from.Add(24 * time.Hour)

	for _, stale := range buckets {
		orders, err := uow.OrderRepository().GetAllCreatedBetween(ctx, stale.CompanyID(), from, to)
		if err != nil {
			return err
		}

		rebuilt, err := rebuildBucket(stale, orders)
		if err != nil {
			return err
		}

		if err = uow.DailyReconciliationRepository().Update(ctx, rebuilt); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func rebuildBucket(stale *ledger.DailyReconciliation, orders []*order.Order) (*ledger.DailyReconciliation, error) {
	rebuilt, err := ledger.NewDailyReconciliation(stale.CompanyID(), stale.Day())
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		charge := o.Charge()
		rebuilt.BookOrder(charge.Price, charge.CourierEarning, charge.Commission)

		switch o.Status() {
		case order.Delivered:
			rebuilt.MarkDelivered()
		case order.Cancelled, order.Rejected:
			rebuilt.ReverseOrder(charge.Price, charge.CourierEarning, charge.Commission)
		}
	}

	rebuilt.CarryPayment(stale.PaidAmount())
	return rebuilt, nil
}
