package commands_test

import (
	"testing"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/courier"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestCouriersCommandHandler_Handle_DispatchesAndNotifiesPool(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	// held back at creation, dispatched manually now
	held, err := order.NewOrder(
		kernel.NewUUID(), "KB-20260830-000004", companyID,
		testDetails(t), testCharge(), false, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)

	orderRepo.On("Get", ctx, held.ID()).Return(held, nil).Once()
	orderRepo.On("Update", ctx, held).Return(nil).Once()
	courierRepo.On("GetAllAvailableApproved", ctx).
		Return([]*courier.Courier{availableCourier(t, courierID)}, nil).Once()

	uow, factory := orderCourierUoW(orderRepo, courierRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyNewOrderToCourierPool", ctx, held, []kernel.UUID{courierID}).Once()

	handler := commands.NewRequestCouriersCommandHandler(factory, notifier)
	cmd, err := commands.NewRequestCouriersCommand(held.ID())
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, held.IsDispatchedToCouriers())
	notifier.AssertExpectations(t)
}

func TestRequestCouriersCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	delivered := deliveredOrder(t, companyID, courierID)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, delivered.ID()).Return(delivered, nil).Once()

	uow, factory := orderCourierUoW(orderRepo, new(MockCourierRepository))

	handler := commands.NewRequestCouriersCommandHandler(factory, new(MockNotifier))
	cmd, err := commands.NewRequestCouriersCommand(delivered.ID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
