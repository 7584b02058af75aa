package pricingrepo

import (
	"context"
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingRuleRepository implements PricingRuleRepository using GORM.
type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricingRuleRepository creates a new GORM pricing rule repository.
func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pricing rule to the database.
func (r *GormPricingRuleRepository) Add(ctx context.Context, aggregate *pricing.Rule) error {
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

// Update saves an existing pricing rule to the database.
func (r *GormPricingRuleRepository) Update(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RuleDTO{}).
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

// Get retrieves a pricing rule by ID.
func (r *GormPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricingRule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveGlobal retrieves the single active rule not bound to a service
// area.
func (r *GormPricingRuleRepository) GetActiveGlobal(ctx context.Context) (*pricing.Rule, error) {
	var dto RuleDTO
	err := r.db.WithContext(ctx).
		First(&dto, "service_area_id IS NULL AND is_active").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricingRule", "active global")
		}
		return nil, err
	}

	return toDomain(dto)
}
