package companyrepo

import (
	"context"
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/company"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM.
type GormCompanyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB, tracker aggregateTracker) *GormCompanyRepository {
	return &GormCompanyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new company to the database.
func (r *GormCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing company to the database.
func (r *GormCompanyRepository) Update(ctx context.Context, aggregate *company.Company) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CompanyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a company by ID.
func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
