package commands_test

import (
	"testing"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRebuildReconciliationsCommandHandler_Handle_ReplaysDayOrders(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	day := ledger.Day(time.Now().UTC())

	// drifted bucket: wrong counters, but a real recorded payment
	stale, err := ledger.NewDailyReconciliation(companyID, day)
	require.NoError(t, err)
	charge := testCharge()
	stale.BookOrder(charge.Price, charge.CourierEarning, charge.Commission)
	stale.ApplyPayment(decimal.NewFromInt(20))

	delivered := deliveredOrder(t, companyID, courierID)
	cancelled := pendingOrder(t, companyID)
	require.NoError(t, cancelled.Cancel("musteri vazgecti", false, 5*time.Minute, time.Now()))
	waiting := pendingOrder(t, companyID)

	orderRepo := new(MockOrderRepository)
	recRepo := new(MockReconciliationRepository)

	recRepo.On("GetAllForDay", ctx, day).
		Return([]*ledger.DailyReconciliation{stale}, nil).Once()
	orderRepo.On("GetAllCreatedBetween", ctx, companyID, day, day.Add(24*time.Hour)).
		Return([]*order.Order{delivered, cancelled, waiting}, nil).Once()

	var rebuilt *ledger.DailyReconciliation
	recRepo.On("Update", ctx, mock.AnythingOfType("*ledger.DailyReconciliation")).
		Run(func(args mock.Arguments) {
			rebuilt = args.Get(1).(*ledger.DailyReconciliation)
		}).Return(nil).Once()

	uow, factory := orderLedgerUoW(orderRepo, new(MockCourierRepository), new(MockBalanceRepository), recRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewRebuildReconciliationsCommandHandler(factory)
	cmd, err := commands.NewRebuildReconciliationsCommand(day)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, rebuilt)
	assert.Equal(t, 2, rebuilt.TotalOrders())
	assert.Equal(t, 1, rebuilt.DeliveredOrders())
	assert.Equal(t, 1, rebuilt.CancelledOrders())
	assert.True(t, rebuilt.NetAmount().Equal(decimal.NewFromFloat(108.00)),
		"net should cover the two live orders, got %s", rebuilt.NetAmount())
	assert.True(t, rebuilt.PaidAmount().Equal(decimal.NewFromInt(20)),
		"recorded payment must survive the rebuild")
	assert.Equal(t, ledger.ReconciliationStatusPartiallyPaid, rebuilt.Status())
}

func TestRebuildReconciliationsCommandHandler_Handle_NoBucketsForDay(t *testing.T) {
	ctx := t.Context()
	day := ledger.Day(time.Now().UTC())

	orderRepo := new(MockOrderRepository)
	recRepo := new(MockReconciliationRepository)
	recRepo.On("GetAllForDay", ctx, day).
		Return([]*ledger.DailyReconciliation{}, nil).Once()

	uow, factory := orderLedgerUoW(orderRepo, new(MockCourierRepository), new(MockBalanceRepository), recRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	handler := commands.NewRebuildReconciliationsCommandHandler(factory)
	cmd, err := commands.NewRebuildReconciliationsCommand(day)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	orderRepo.AssertNotCalled(t, "GetAllCreatedBetween",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNewRebuildReconciliationsCommand_NormalizesDay(t *testing.T) {
	noon := time.Date(2026, 8, 29, 12, 34, 56, 0, time.UTC)

	cmd, err := commands.NewRebuildReconciliationsCommand(noon)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), cmd.Day())
}

func TestNewRebuildReconciliationsCommand_RejectsZeroDay(t *testing.T) {
	_, err := commands.NewRebuildReconciliationsCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
