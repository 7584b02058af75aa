package commands

import (
	"context"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order, reverses its ledger booking
// and frees the bound courier, all inside one transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderLedgerUoWFactory
	notifier   ports.NotificationPort

	// cancellationWindow bounds company-initiated cancellation once the
	// order has left the pending state.
	cancellationWindow time.Duration
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderLedgerUoWFactory,
	notifier ports.NotificationPort,
	cancellationWindow time.Duration,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:         uowFactory,
		notifier:           notifier,
		cancellationWindow: cancellationWindow,
	}
}

// Handle processes the cancellation and notifies the owning company after
// commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	// only a cancellation out of ACCEPTED has a courier to free
	boundCourier := aggregate.Courier()

	if err = aggregate.Cancel(
		cmd.Reason(), cmd.InitiatedByCompany(), h.cancellationWindow, time.Now(),
	); err != nil {
		return err
	}

	if boundCourier != nil {
		courierRepo := uow.CourierRepository()
		assignee, err := courierRepo.GetForUpdate(ctx, *boundCourier)
		if err != nil {
			return err
		}
		assignee.MarkAvailable()
		if err = courierRepo.Update(ctx, assignee); err != nil {
			return err
		}
	}

	ledger := services.NewLedger(
		uow.CompanyBalanceRepository(), uow.DailyReconciliationRepository())
	if err = ledger.OnOrderCancelled(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)
	return nil
}
