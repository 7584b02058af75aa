package commands

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
)

// RateOrderCommandHandler attaches a rating to a delivered order and folds
// it into the courier's running average.
type RateOrderCommandHandler struct {
	uowFactory OrderCourierUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(uowFactory OrderCourierUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	// another company's orders are invisible to the rater
	if !aggregate.CompanyID().IsEqual(cmd.CompanyID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if err = aggregate.Rate(cmd.Rating(), cmd.Feedback()); err != nil {
		return err
	}

	// a delivered order always has its courier recorded
	courierRepo := uow.CourierRepository()
	assignee, err := courierRepo.GetForUpdate(ctx, *aggregate.Courier())
	if err != nil {
		return err
	}
	if err = assignee.AddRating(cmd.Rating()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = courierRepo.Update(ctx, assignee); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
