package arearepo

import (
	"context"
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServiceAreaRepository implements ServiceAreaRepository using GORM.
type GormServiceAreaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceAreaRepository creates a new GORM service area repository.
func NewGormServiceAreaRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceAreaRepository {
	return &GormServiceAreaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service area to the database.
func (r *GormServiceAreaRepository) Add(ctx context.Context, aggregate *servicearea.ServiceArea) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing service area to the database.
func (r *GormServiceAreaRepository) Update(ctx context.Context, aggregate *servicearea.ServiceArea) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&ServiceAreaDTO{}).
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

// Get retrieves a service area by ID.
func (r *GormServiceAreaRepository) Get(ctx context.Context, id kernel.UUID) (*servicearea.ServiceArea, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceAreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceArea", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every active service area.
func (r *GormServiceAreaRepository) GetAllActive(ctx context.Context) ([]*servicearea.ServiceArea, error) {
	var dtos []ServiceAreaDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active").Error; err != nil {
		return nil, err
	}

	areas := make([]*servicearea.ServiceArea, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}

	return areas, nil
}
