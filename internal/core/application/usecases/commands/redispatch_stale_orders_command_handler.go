package commands

import (
	"context"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
)

// RedispatchStaleOrdersCommandHandler re-announces pending orders that no
// courier has taken within the configured age.
type RedispatchStaleOrdersCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	notifier   ports.NotificationPort
}

// NewRedispatchStaleOrdersCommandHandler creates a handler for the
// redispatch sweep.
func NewRedispatchStaleOrdersCommandHandler(
	uowFactory OrderCourierUoWFactory,
	notifier ports.NotificationPort,
) RedispatchStaleOrdersCommandHandler {
	return RedispatchStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle finds every dispatched pending order older than the command's
// maxAge and announces each one to the available courier pool again. The
// announcements fire after commit.
func (h *RedispatchStaleOrdersCommandHandler) Handle(ctx context.Context, cmd RedispatchStaleOrdersCommand) error {
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

	waiting, err := uow.OrderRepository().GetAllDispatchedPending(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-cmd.MaxAge())
	stale := make([]*order.Order, 0, len(waiting))
	for _, o := range waiting {
		if o.CreatedAt().Before(cutoff) {
			stale = append(stale, o)
		}
	}

	if len(stale) == 0 {
		return uow.Commit(ctx)
	}

	couriers, err := uow.CourierRepository().GetAllAvailableApproved(ctx)
	if err != nil {
		return err
	}
	pool := make([]kernel.UUID, 0, len(couriers))
	for _, c := range couriers {
		pool = append(pool, c.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, o := range stale {
		h.notifier.NotifyNewOrderToCourierPool(ctx, o, pool)
	}
	return nil
}
