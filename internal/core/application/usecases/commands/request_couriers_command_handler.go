package commands

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
)

// RequestCouriersCommandHandler flags a pending order as dispatched and
// announces it to every available approved courier.
type RequestCouriersCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	notifier   ports.NotificationPort
}

// NewRequestCouriersCommandHandler creates a handler for manual dispatch.
func NewRequestCouriersCommandHandler(
	uowFactory OrderCourierUoWFactory,
	notifier ports.NotificationPort,
) RequestCouriersCommandHandler {
	return RequestCouriersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the manual dispatch command. The pool announcement fires
// after commit.
func (h *RequestCouriersCommandHandler) Handle(ctx context.Context, cmd RequestCouriersCommand) error {
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

	if err = aggregate.Dispatch(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
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

	h.notifier.NotifyNewOrderToCourierPool(ctx, aggregate, pool)
	return nil
}
