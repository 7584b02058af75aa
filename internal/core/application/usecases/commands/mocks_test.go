package commands_test

import (
	"context"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/company"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/courier"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) TryAssignCourier(
	ctx context.Context, orderID, courierID kernel.UUID, acceptedAt time.Time,
) (bool, error) {
	args := m.Called(ctx, orderID, courierID, acceptedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllDispatchedPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllCreatedBetween(
	ctx context.Context, companyID kernel.UUID, from, to time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailableApproved(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Add(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.Company), args.Error(1)
}

type MockServiceAreaRepository struct{ mock.Mock }

func (m *MockServiceAreaRepository) Add(ctx context.Context, a *servicearea.ServiceArea) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockServiceAreaRepository) Update(ctx context.Context, a *servicearea.ServiceArea) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockServiceAreaRepository) Get(ctx context.Context, id kernel.UUID) (*servicearea.ServiceArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicearea.ServiceArea), args.Error(1)
}

func (m *MockServiceAreaRepository) GetAllActive(ctx context.Context) ([]*servicearea.ServiceArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*servicearea.ServiceArea), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Add(ctx context.Context, r *pricing.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Update(ctx context.Context, r *pricing.Rule) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}

func (m *MockPricingRuleRepository) GetActiveGlobal(ctx context.Context) (*pricing.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}

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

func (m *MockReconciliationRepository) Get(
	ctx context.Context, companyID kernel.UUID, day time.Time,
) (*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, companyID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.DailyReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) GetAllUnpaidOldestFirst(
	ctx context.Context, companyID kernel.UUID,
) ([]*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.DailyReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) GetAllForCompany(
	ctx context.Context, companyID kernel.UUID,
) ([]*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.DailyReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) GetAllForDay(
	ctx context.Context, day time.Time,
) ([]*ledger.DailyReconciliation, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.DailyReconciliation), args.Error(1)
}

// MockUoW satisfies every composite unit-of-work interface the handlers
// name, so each test wires only the repositories its command touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) CompanyRepository() ports.CompanyRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyRepository)
}

func (m *MockUoW) ServiceAreaRepository() ports.ServiceAreaRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceAreaRepository)
}

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRuleRepository)
}

func (m *MockUoW) CompanyBalanceRepository() ports.CompanyBalanceRepository {
	args := m.Called()
	return args.Get(0).(ports.CompanyBalanceRepository)
}

func (m *MockUoW) DailyReconciliationRepository() ports.DailyReconciliationRepository {
	args := m.Called()
	return args.Get(0).(ports.DailyReconciliationRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockOrderCourierUoWFactory struct{ mock.Mock }

func (m *MockOrderCourierUoWFactory) Create() commands.OrderCourierUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCourierUoW)
}

type MockOrderLedgerUoWFactory struct{ mock.Mock }

func (m *MockOrderLedgerUoWFactory) Create() commands.OrderLedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderLedgerUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

// MockNotifier records fire-and-forget notification calls.
type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyNewOrderToCourierPool(ctx context.Context, o *order.Order, courierIDs []kernel.UUID) {
	m.Called(ctx, o, courierIDs)
}

func (m *MockNotifier) NotifyOrderAssigned(ctx context.Context, o *order.Order, courierID kernel.UUID) {
	m.Called(ctx, o, courierID)
}

func (m *MockNotifier) NotifyOrderWithdrawn(ctx context.Context, o *order.Order, courierIDs []kernel.UUID) {
	m.Called(ctx, o, courierIDs)
}

func (m *MockNotifier) NotifyOrderStatusChanged(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}
