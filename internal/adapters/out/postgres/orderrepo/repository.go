package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// requires TranslateError on the gorm session
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateOrderNumber
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Select("*") forces nil
// courier and timestamp columns through; Updates would otherwise skip zero
// values.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNumber retrieves an order by its human-readable number.
func (r *GormOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// TryAssignCourier claims a pending, unassigned order for the courier with a
// single conditional update. Whoever's update touches the row wins; every
// later one matches zero rows. The affected-row count is the only source of
// the decision.
func (r *GormOrderRepository) TryAssignCourier(
	ctx context.Context,
	orderID, courierID kernel.UUID,
	acceptedAt time.Time,
) (bool, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return false, err
	}

	courierRaw := courierID.Bytes()
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND courier_id IS NULL",
			orderID.Bytes(), order.Pending.String()).
		Updates(map[string]any{
			"status":      order.Accepted.String(),
			"courier_id":  courierRaw,
			"accepted_at": acceptedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// GetAllDispatchedPending retrieves every order currently visible in the
// courier pool.
func (r *GormOrderRepository) GetAllDispatchedPending(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ? AND is_dispatched_to_couriers AND courier_id IS NULL",
			order.Pending.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllCreatedBetween retrieves a company's orders created in [from, to).
func (r *GormOrderRepository) GetAllCreatedBetween(
	ctx context.Context,
	companyID kernel.UUID,
	from, to time.Time,
) ([]*order.Order, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "company_id = ? AND created_at >= ? AND created_at < ?",
			companyID.Bytes(), from, to).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
