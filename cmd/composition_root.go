package cmd

import (
	"log/slog"

	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/notify"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/commands"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/queries"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/services"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
	"github.com/hodoxnet/kuryemburada-sub000/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and use cases together.
// Handler creators hand each command the narrowest unit-of-work factory it
// names via small function adapters.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.NotificationPort
	engine     services.PricingEngine
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph. Fails when the configuration
// carries an unusable commission rate.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	engine, err := services.NewPricingEngine(config.CommissionRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewLogNotifier(logger),
		engine:     engine,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		services.NewGeofenceResolver(),
		c.engine,
		c.notifier,
		c.config.IntegrationFlatPrice,
		c.config.GeofenceExemptSources,
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderLedgerUoWFactory = FuncOrderLedgerUoWFactory(func() commands.OrderLedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderLedgerUoWFactory = FuncOrderLedgerUoWFactory(func() commands.OrderLedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.config.CancellationWindow)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestCouriersCommandHandler() commands.RequestCouriersCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCouriersCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateReviewOrderPricingCommandHandler() commands.ReviewOrderPricingCommandHandler {
	var f commands.OrderLedgerUoWFactory = FuncOrderLedgerUoWFactory(func() commands.OrderLedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewOrderPricingCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateRedispatchStaleOrdersCommandHandler() commands.RedispatchStaleOrdersCommandHandler {
	var f commands.OrderCourierUoWFactory = FuncOrderCourierUoWFactory(func() commands.OrderCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRedispatchStaleOrdersCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRebuildReconciliationsCommandHandler() commands.RebuildReconciliationsCommandHandler {
	var f commands.OrderLedgerUoWFactory = FuncOrderLedgerUoWFactory(func() commands.OrderLedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRebuildReconciliationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompanyBalanceQueryHandler() queries.GetCompanyBalanceQueryHandler {
	return queries.NewGetCompanyBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyReconciliationsQueryHandler() queries.GetDailyReconciliationsQueryHandler {
	return queries.NewGetDailyReconciliationsQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs with their schedules.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRedispatchStaleOrdersCommandHandler(),
		c.CreateRebuildReconciliationsCommandHandler(),
		jobs.Schedules{
			OrderRedispatch:       c.config.RedispatchSchedule,
			RedispatchMaxAge:      c.config.RedispatchMaxAge,
			ReconciliationRebuild: c.config.ReconciliationRebuildSchedule,
		},
		c.logger,
	)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderCourierUoWFactory func() commands.OrderCourierUoW

func (f FuncOrderCourierUoWFactory) Create() commands.OrderCourierUoW {
	return f()
}

type FuncOrderLedgerUoWFactory func() commands.OrderLedgerUoW

func (f FuncOrderLedgerUoWFactory) Create() commands.OrderLedgerUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
