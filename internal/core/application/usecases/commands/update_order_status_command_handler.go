package commands

import (
	"context"
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
)

// ErrCourierNotAssigned is returned when a courier tries to drive an order
// that is not theirs.
var ErrCourierNotAssigned = errors.New("courier is not assigned to this order")

// UpdateOrderStatusCommandHandler advances an order through its
// courier-driven transitions. Delivery frees the courier, counts the
// delivery and books the ledger event inside the same transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderLedgerUoWFactory
	notifier   ports.NotificationPort
}

// NewUpdateOrderStatusCommandHandler creates a handler for courier-driven
// status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderLedgerUoWFactory,
	notifier ports.NotificationPort,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status update and notifies the owning company after
// commit.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	if courierID := aggregate.Courier(); courierID == nil || !courierID.IsEqual(cmd.CourierID()) {
		return ErrCourierNotAssigned
	}

	now := time.Now()
	switch cmd.Target() {
	case order.InProgress:
		err = aggregate.Start(now)
	case order.Delivered:
		err = h.deliver(ctx, uow, aggregate, now)
	default:
		err = ErrTargetStatusNotAllowed
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

	h.notifier.NotifyOrderStatusChanged(ctx, aggregate)
	return nil
}

// deliver completes the order and settles its side effects: the courier is
// freed and credited with the delivery, and the reconciliation bucket counts
// it. All of it commits or rolls back with the status change.
func (h *UpdateOrderStatusCommandHandler) deliver(
	ctx context.Context,
	uow OrderLedgerUoW,
	aggregate *order.Order,
	now time.Time,
) error {
	if err := aggregate.Deliver(now); err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()
	assignee, err := courierRepo.GetForUpdate(ctx, *aggregate.Courier())
	if err != nil {
		return err
	}
	assignee.MarkAvailable()
	assignee.RecordDelivery()
	if err = courierRepo.Update(ctx, assignee); err != nil {
		return err
	}

	ledger := services.NewLedger(
		uow.CompanyBalanceRepository(), uow.DailyReconciliationRepository())
	return ledger.OnOrderDelivered(ctx, aggregate)
}
