package commands

import (
	"context"
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
)

var (
	// ErrOrderAlreadyTaken is returned to every courier who lost the race
	// for an order, and to claims on orders that already left the pending
	// state.
	ErrOrderAlreadyTaken = errors.New("order is already taken")

	// ErrCourierNotApproved is returned when a courier that is not
	// approved tries to accept an order.
	ErrCourierNotApproved = errors.New("courier is not approved")
)

// AcceptOrderCommandHandler arbitrates concurrent courier claims on the same
// order. The winner is decided by one conditional update inside the
// transaction; the handler never pre-reads the order's state to make the
// call, so two concurrent claims can never both succeed.
type AcceptOrderCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	notifier   ports.NotificationPort
}

// NewAcceptOrderCommandHandler creates a handler for courier acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderCourierUoWFactory,
	notifier ports.NotificationPort,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one courier's claim. On success the courier is marked
// busy in the same transaction; after commit the winner is notified and the
// rest of the pool told the order is gone.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	// The locked read serializes a courier racing himself onto two
	// orders; the loser re-reads the busy flag and fails MarkBusy.
	courierRepo := uow.CourierRepository()
	claimant, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if !claimant.IsApproved() {
		return nil, ErrCourierNotApproved
	}

	won, err := uow.OrderRepository().TryAssignCourier(
		ctx, cmd.OrderID(), cmd.CourierID(), time.Now())
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, ErrOrderAlreadyTaken
	}

	if err = claimant.MarkBusy(); err != nil {
		return nil, err
	}
	if err = courierRepo.Update(ctx, claimant); err != nil {
		return nil, err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	losers, err := h.remainingPool(ctx, courierRepo, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyOrderAssigned(ctx, aggregate, cmd.CourierID())
	h.notifier.NotifyOrderWithdrawn(ctx, aggregate, losers)
	return aggregate, nil
}

func (h *AcceptOrderCommandHandler) remainingPool(
	ctx context.Context,
	courierRepo ports.CourierRepository,
	winnerID kernel.UUID,
) ([]kernel.UUID, error) {
	couriers, err := courierRepo.GetAllAvailableApproved(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(couriers))
	for _, c := range couriers {
		if c.ID().IsEqual(winnerID) {
			continue
		}
		ids = append(ids, c.ID())
	}
	return ids, nil
}
