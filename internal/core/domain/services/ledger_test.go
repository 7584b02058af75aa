package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBalanceRepository struct{ mock.Mock }

func (m *MockBalanceRepository) Add(ctx context.Context, b *ledger.CompanyBalance) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBalanceRepository) Update(ctx context.Context, b *ledger.CompanyBalance) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBalanceRepository) Get(ctx context.Context, companyID kernel.UUID) (*ledger.CompanyBalance, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.CompanyBalance), args.Error(1)
}

func (m *MockBalanceRepository) GetForUpdate(ctx context.Context, companyID kernel.UUID) (*ledger.CompanyBalance, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.CompanyBalance), args.Error(1)
}

type MockReconciliationRepository struct{ mock.Mock }

func (m *MockReconciliationRepository) Add(ctx context.Context, r *ledger.DailyReconciliation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReconciliationRepository) Update(ctx context.Context, r *ledger.DailyReconciliation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReconciliationRepository) Get(ctx context.Context, companyID kernel.UUID, day time.Time) (*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, companyID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.DailyReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) GetAllUnpaidOldestFirst(ctx context.Context, companyID kernel.UUID) ([]*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.DailyReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) GetAllForCompany(ctx context.Context, companyID kernel.UUID) ([]*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.DailyReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) GetAllForDay(ctx context.Context, day time.Time) ([]*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.DailyReconciliation), args.Error(1)
}

func ledgerOrder(t *testing.T, companyID kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(41.0082, 28.9784)
	require.NoError(t, err)
	delivery, err := kernel.NewGeoPoint(40.9900, 29.0300)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "KB-20260830-000042", companyID,
		order.Details{
			RecipientName:   "Ali Veli",
			RecipientPhone:  "+905551112233",
			PickupPoint:     pickup,
			DeliveryPoint:   delivery,
			PickupAddress:   "Askerocagi Cd. 1",
			DeliveryAddress: "Bagdat Cd. 99",
			PackageType:     order.PackageTypeParcel,
			PackageSize:     order.PackageSizeMedium,
			DeliveryType:    order.DeliveryTypeStandard,
			Urgency:         order.UrgencyNormal,
		},
		order.Charge{
			DistanceKm:       decimal.NewFromInt(10),
			EstimatedTimeMin: 30,
			Price:            decimal.NewFromFloat(54.00),
			Commission:       decimal.NewFromFloat(8.10),
			CourierEarning:   decimal.NewFromFloat(45.90),
		},
		true, createdAt)
	require.NoError(t, err)
	return o
}

func TestLedger_OnOrderCreated_FirstEverOrderCreatesRows(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := ledgerOrder(t, companyID, createdAt)

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)

	balances.On("GetForUpdate", ctx, companyID).Return(nil, errs.ErrObjectNotFound).Once()
	balances.On("Add", ctx, mock.AnythingOfType("*ledger.CompanyBalance")).Return(nil).Once()
	recs.On("Get", ctx, companyID, ledger.Day(createdAt)).Return(nil, errs.ErrObjectNotFound).Once()
	recs.On("Add", ctx, mock.AnythingOfType("*ledger.DailyReconciliation")).Return(nil).Once()

	err := services.NewLedger(balances, recs).OnOrderCreated(ctx, o)

	require.NoError(t, err)
	balance := balances.Calls[1].Arguments[1].(*ledger.CompanyBalance)
	assert.True(t, balance.CurrentBalance().Equal(decimal.NewFromFloat(54.00)))
	assert.True(t, balance.TotalDebts().Equal(decimal.NewFromFloat(54.00)))

	bucket := recs.Calls[1].Arguments[1].(*ledger.DailyReconciliation)
	assert.Equal(t, 1, bucket.TotalOrders())
	assert.True(t, bucket.NetAmount().Equal(decimal.NewFromFloat(54.00)))
	assert.True(t, bucket.CourierCost().Equal(decimal.NewFromFloat(45.90)))
	assert.True(t, bucket.PlatformCommission().Equal(decimal.NewFromFloat(8.10)))
	balances.AssertExpectations(t)
	recs.AssertExpectations(t)
}

func TestLedger_OnOrderCreated_ExistingRowsUpdated(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := ledgerOrder(t, companyID, createdAt)

	balance, err := ledger.NewCompanyBalance(companyID)
	require.NoError(t, err)
	require.NoError(t, balance.AddDebt(decimal.NewFromInt(30)))
	bucket, err := ledger.NewDailyReconciliation(companyID, createdAt)
	require.NoError(t, err)

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)

	balances.On("GetForUpdate", ctx, companyID).Return(balance, nil).Once()
	balances.On("Update", ctx, balance).Return(nil).Once()
	recs.On("Get", ctx, companyID, ledger.Day(createdAt)).Return(bucket, nil).Once()
	recs.On("Update", ctx, bucket).Return(nil).Once()

	err = services.NewLedger(balances, recs).OnOrderCreated(ctx, o)

	require.NoError(t, err)
	assert.True(t, balance.CurrentBalance().Equal(decimal.NewFromFloat(84.00)))
	assert.Equal(t, 1, bucket.TotalOrders())
}

func TestLedger_OnOrderDelivered_MissingBucketTolerated(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := ledgerOrder(t, companyID, createdAt)

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)
	recs.On("Get", ctx, companyID, ledger.Day(createdAt)).Return(nil, errs.ErrObjectNotFound).Once()

	err := services.NewLedger(balances, recs).OnOrderDelivered(ctx, o)

	require.NoError(t, err)
	recs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLedger_OnOrderDelivered_CountsDelivery(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := ledgerOrder(t, companyID, createdAt)

	bucket, err := ledger.NewDailyReconciliation(companyID, createdAt)
	require.NoError(t, err)
	bucket.BookOrder(
		decimal.NewFromFloat(54.00), decimal.NewFromFloat(45.90), decimal.NewFromFloat(8.10))

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)
	recs.On("Get", ctx, companyID, ledger.Day(createdAt)).Return(bucket, nil).Once()
	recs.On("Update", ctx, bucket).Return(nil).Once()

	err = services.NewLedger(balances, recs).OnOrderDelivered(ctx, o)

	require.NoError(t, err)
	assert.Equal(t, 1, bucket.DeliveredOrders())
}

func TestLedger_OnOrderCancelled_ReversesBookingEvenWithoutBucket(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := ledgerOrder(t, companyID, createdAt)

	balance, err := ledger.NewCompanyBalance(companyID)
	require.NoError(t, err)
	require.NoError(t, balance.AddDebt(decimal.NewFromFloat(54.00)))

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)

	balances.On("GetForUpdate", ctx, companyID).Return(balance, nil).Once()
	balances.On("Update", ctx, balance).Return(nil).Once()
	recs.On("Get", ctx, companyID, ledger.Day(createdAt)).Return(nil, errs.ErrObjectNotFound).Once()

	err = services.NewLedger(balances, recs).OnOrderCancelled(ctx, o)

	require.NoError(t, err)
	assert.True(t, balance.CurrentBalance().IsZero())
	recs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLedger_OnOrderCancelled_ReversesBucket(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	o := ledgerOrder(t, companyID, createdAt)

	balance, err := ledger.NewCompanyBalance(companyID)
	require.NoError(t, err)
	require.NoError(t, balance.AddDebt(decimal.NewFromFloat(54.00)))
	bucket, err := ledger.NewDailyReconciliation(companyID, createdAt)
	require.NoError(t, err)
	bucket.BookOrder(
		decimal.NewFromFloat(54.00), decimal.NewFromFloat(45.90), decimal.NewFromFloat(8.10))

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)

	balances.On("GetForUpdate", ctx, companyID).Return(balance, nil).Once()
	balances.On("Update", ctx, balance).Return(nil).Once()
	recs.On("Get", ctx, companyID, ledger.Day(createdAt)).Return(bucket, nil).Once()
	recs.On("Update", ctx, bucket).Return(nil).Once()

	err = services.NewLedger(balances, recs).OnOrderCancelled(ctx, o)

	require.NoError(t, err)
	assert.Zero(t, bucket.TotalOrders())
	assert.Equal(t, 1, bucket.CancelledOrders())
	assert.True(t, bucket.NetAmount().IsZero())
}

func TestLedger_OnPaymentCompleted_SettlesOldestFirst(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	paidAt := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	balance, err := ledger.NewCompanyBalance(companyID)
	require.NoError(t, err)
	require.NoError(t, balance.AddDebt(decimal.NewFromInt(80)))

	older, err := ledger.NewDailyReconciliation(companyID, paidAt.AddDate(0, 0, -2))
	require.NoError(t, err)
	older.BookOrder(decimal.NewFromInt(50), decimal.NewFromFloat(42.50), decimal.NewFromFloat(7.50))
	newer, err := ledger.NewDailyReconciliation(companyID, paidAt.AddDate(0, 0, -1))
	require.NoError(t, err)
	newer.BookOrder(decimal.NewFromInt(30), decimal.NewFromFloat(25.50), decimal.NewFromFloat(4.50))

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)

	balances.On("GetForUpdate", ctx, companyID).Return(balance, nil).Once()
	balances.On("Update", ctx, balance).Return(nil).Once()
	recs.On("GetAllUnpaidOldestFirst", ctx, companyID).
		Return([]*ledger.DailyReconciliation{older, newer}, nil).Once()
	recs.On("Update", ctx, older).Return(nil).Once()
	recs.On("Update", ctx, newer).Return(nil).Once()

	err = services.NewLedger(balances, recs).
		OnPaymentCompleted(ctx, companyID, decimal.NewFromInt(60), paidAt)

	require.NoError(t, err)
	assert.Equal(t, ledger.ReconciliationStatusPaid, older.Status())
	assert.Equal(t, ledger.ReconciliationStatusPartiallyPaid, newer.Status())
	assert.True(t, newer.PaidAmount().Equal(decimal.NewFromInt(10)))
	assert.True(t, balance.CurrentBalance().Equal(decimal.NewFromInt(20)))
	require.NotNil(t, balance.LastPaymentAmount())
	assert.True(t, balance.LastPaymentAmount().Equal(decimal.NewFromInt(60)))
}

func TestLedger_OnPaymentCompleted_RemainderStaysOnBalance(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	paidAt := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	balance, err := ledger.NewCompanyBalance(companyID)
	require.NoError(t, err)
	require.NoError(t, balance.AddDebt(decimal.NewFromInt(30)))

	bucket, err := ledger.NewDailyReconciliation(companyID, paidAt.AddDate(0, 0, -1))
	require.NoError(t, err)
	bucket.BookOrder(decimal.NewFromInt(30), decimal.NewFromFloat(25.50), decimal.NewFromFloat(4.50))

	balances := new(MockBalanceRepository)
	recs := new(MockReconciliationRepository)

	balances.On("GetForUpdate", ctx, companyID).Return(balance, nil).Once()
	balances.On("Update", ctx, balance).Return(nil).Once()
	recs.On("GetAllUnpaidOldestFirst", ctx, companyID).
		Return([]*ledger.DailyReconciliation{bucket}, nil).Once()
	recs.On("Update", ctx, bucket).Return(nil).Once()

	err = services.NewLedger(balances, recs).
		OnPaymentCompleted(ctx, companyID, decimal.NewFromInt(100), paidAt)

	require.NoError(t, err)
	assert.Equal(t, ledger.ReconciliationStatusPaid, bucket.Status())
	assert.True(t, balance.CurrentBalance().Equal(decimal.NewFromInt(-70)))
}

func TestLedger_OnPaymentCompleted_RejectsNonPositiveAmount(t *testing.T) {
	ctx := t.Context()
	ledgerSvc := services.NewLedger(new(MockBalanceRepository), new(MockReconciliationRepository))

	err := ledgerSvc.OnPaymentCompleted(ctx, kernel.NewUUID(), decimal.Zero, time.Now())

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
