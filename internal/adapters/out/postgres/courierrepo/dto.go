// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/courier"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. The (status, is_available) pair is what the pool query
// filters on.
type CourierDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string `gorm:"size:32"`
	Status          int    `gorm:"index:idx_couriers_pool"`
	IsAvailable     bool   `gorm:"index:idx_couriers_pool"`
	TotalDeliveries int
	RatingSum       int
	RatingCount     int
}

// TableName overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone(),
		Status:          int(aggregate.Status()),
		IsAvailable:     aggregate.IsAvailable(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		RatingSum:       aggregate.RatingSum(),
		RatingCount:     aggregate.RatingCount(),
	}
}

// toDomain converts a database row back to a courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		courier.Status(dto.Status),
		dto.IsAvailable,
		dto.TotalDeliveries,
		dto.RatingSum,
		dto.RatingCount,
	)
}
