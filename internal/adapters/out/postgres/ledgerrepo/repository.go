package ledgerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCompanyBalanceRepository implements CompanyBalanceRepository using
// GORM.
type GormCompanyBalanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCompanyBalanceRepository creates a new GORM balance repository.
func NewGormCompanyBalanceRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyBalanceRepository {
	return &GormCompanyBalanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new balance row to the database.
func (r *GormCompanyBalanceRepository) Add(ctx context.Context, balance *ledger.CompanyBalance) error {
	if err := balance.Validate(); err != nil {
		return err
	}

	dto := balanceFromDomain(balance)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(balance.CompanyID(), balance)
	return nil
}

// Update saves an existing balance row to the database.
func (r *GormCompanyBalanceRepository) Update(ctx context.Context, balance *ledger.CompanyBalance) error {
	if err := balance.Validate(); err != nil {
		return err
	}

	dto := balanceFromDomain(balance)
	result := r.db.WithContext(ctx).Model(&CompanyBalanceDTO{}).
		Where("company_id = ?", dto.CompanyID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(balance.CompanyID(), balance)
	return nil
}

// Get retrieves a company's balance without locking it.
func (r *GormCompanyBalanceRepository) Get(ctx context.Context, companyID kernel.UUID) (*ledger.CompanyBalance, error) {
	return r.get(ctx, companyID, false)
}

// GetForUpdate retrieves a company's balance with SELECT ... FOR UPDATE,
// holding the row lock until the surrounding transaction ends. Concurrent
// bookings against the same company queue up here instead of clobbering
// each other's totals.
func (r *GormCompanyBalanceRepository) GetForUpdate(ctx context.Context, companyID kernel.UUID) (*ledger.CompanyBalance, error) {
	return r.get(ctx, companyID, true)
}

func (r *GormCompanyBalanceRepository) get(ctx context.Context, companyID kernel.UUID, lock bool) (*ledger.CompanyBalance, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto CompanyBalanceDTO
	if err := tx.First(&dto, "company_id = ?", companyID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("companyBalance", companyID.String())
		}
		return nil, err
	}

	return balanceToDomain(dto)
}

// GormDailyReconciliationRepository implements DailyReconciliationRepository
// using GORM.
type GormDailyReconciliationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDailyReconciliationRepository creates a new GORM reconciliation
// repository.
func NewGormDailyReconciliationRepository(db *gorm.DB, tracker aggregateTracker) *GormDailyReconciliationRepository {
	return &GormDailyReconciliationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bucket to the database.
func (r *GormDailyReconciliationRepository) Add(ctx context.Context, rec *ledger.DailyReconciliation) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto := reconciliationFromDomain(rec)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rec.CompanyID(), rec)
	return nil
}

// Update saves an existing bucket to the database.
func (r *GormDailyReconciliationRepository) Update(ctx context.Context, rec *ledger.DailyReconciliation) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto := reconciliationFromDomain(rec)
	result := r.db.WithContext(ctx).Model(&DailyReconciliationDTO{}).
		Where("company_id = ? AND day = ?", dto.CompanyID, dto.Day).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(rec.CompanyID(), rec)
	return nil
}

// Get retrieves the bucket for one company and calendar day.
func (r *GormDailyReconciliationRepository) Get(ctx context.Context, companyID kernel.UUID, day time.Time) (*ledger.DailyReconciliation, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dto DailyReconciliationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "company_id = ? AND day = ?", companyID.Bytes(), ledger.Day(day)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dailyReconciliation", companyID.String())
		}
		return nil, err
	}

	return reconciliationToDomain(dto)
}

// GetAllUnpaidOldestFirst retrieves a company's not-fully-paid buckets, day
// ascending.
func (r *GormDailyReconciliationRepository) GetAllUnpaidOldestFirst(ctx context.Context, companyID kernel.UUID) ([]*ledger.DailyReconciliation, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DailyReconciliationDTO
	err := r.db.WithContext(ctx).
		Order("day").
		Find(&dtos, "company_id = ? AND status <> ?",
			companyID.Bytes(), ledger.ReconciliationStatusPaid.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForCompany retrieves every bucket of a company, newest first.
func (r *GormDailyReconciliationRepository) GetAllForCompany(ctx context.Context, companyID kernel.UUID) ([]*ledger.DailyReconciliation, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DailyReconciliationDTO
	err := r.db.WithContext(ctx).
		Order("day DESC").
		Find(&dtos, "company_id = ?", companyID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForDay retrieves every company's bucket for one calendar day.
func (r *GormDailyReconciliationRepository) GetAllForDay(ctx context.Context, day time.Time) ([]*ledger.DailyReconciliation, error) {
	var dtos []DailyReconciliationDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "day = ?", ledger.Day(day)).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DailyReconciliationDTO) ([]*ledger.DailyReconciliation, error) {
	buckets := make([]*ledger.DailyReconciliation, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := reconciliationToDomain(dto)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, rec)
	}
	return buckets, nil
}
