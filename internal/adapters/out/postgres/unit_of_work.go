// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work maintains the set of aggregates touched by
// one business transaction and coordinates committing or rolling back their
// changes as a whole.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance carries its own transaction; concurrent
// operations must use separate instances.
package postgres

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/arearepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/companyrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/courierrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/ledgerrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/orderrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/adapters/out/postgres/pricingrepo"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for patterns like the outbox or post-commit event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the dispatch
// repositories. Repository accessors return instances bound to the current
// transaction when one is active, or to the main connection otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op rather than a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After
// rollback the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CourierRepository returns a courier repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// CompanyRepository returns a company repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CompanyRepository() ports.CompanyRepository {
	return companyrepo.NewGormCompanyRepository(uow.conn(), uow)
}

// ServiceAreaRepository returns a service area repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ServiceAreaRepository() ports.ServiceAreaRepository {
	return arearepo.NewGormServiceAreaRepository(uow.conn(), uow)
}

// PricingRuleRepository returns a pricing rule repository bound to the
// current transaction.
func (uow *GormUnitOfWork) PricingRuleRepository() ports.PricingRuleRepository {
	return pricingrepo.NewGormPricingRuleRepository(uow.conn(), uow)
}

// CompanyBalanceRepository returns a balance repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CompanyBalanceRepository() ports.CompanyBalanceRepository {
	return ledgerrepo.NewGormCompanyBalanceRepository(uow.conn(), uow)
}

// DailyReconciliationRepository returns a reconciliation repository bound to
// the current transaction.
func (uow *GormUnitOfWork) DailyReconciliationRepository() ports.DailyReconciliationRepository {
	return ledgerrepo.NewGormDailyReconciliationRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this when aggregates are added
// or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
