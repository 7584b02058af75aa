package commands

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
)

// CompletePaymentCommandHandler credits a confirmed payment against the
// company's balance and settles outstanding daily reconciliations oldest
// first.
type CompletePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCompletePaymentCommandHandler creates a handler for payment completion.
func NewCompletePaymentCommandHandler(uowFactory PaymentUoWFactory) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
func (h *CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
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

	ledger := services.NewLedger(
		uow.CompanyBalanceRepository(), uow.DailyReconciliationRepository())
	if err := ledger.OnPaymentCompleted(
		ctx, cmd.CompanyID(), cmd.Amount(), cmd.PaidAt(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
