// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its wire string; the partial courier pool
// queries rely on the (status, courier_id) indexes.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber string     `gorm:"size:32;uniqueIndex"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"size:32;index"`

	RecipientName   string
	RecipientPhone  string
	PickupLat       float64
	PickupLng       float64
	DeliveryLat     float64
	DeliveryLng     float64
	PickupAddress   string
	DeliveryAddress string
	AddressDetail   string
	PackageType     string `gorm:"size:16"`
	PackageSize     string `gorm:"size:16"`
	DeliveryType    string `gorm:"size:16"`
	Urgency         string `gorm:"size:16"`
	Source          string `gorm:"size:32"`

	ServiceAreaID    *uuid.UUID      `gorm:"type:uuid"`
	DistanceKm       decimal.Decimal `gorm:"type:numeric(10,3)"`
	EstimatedTimeMin int
	Price            decimal.Decimal `gorm:"type:numeric(12,2)"`
	Commission       decimal.Decimal `gorm:"type:numeric(12,2)"`
	CourierEarning   decimal.Decimal `gorm:"type:numeric(12,2)"`

	IsDispatchedToCouriers bool
	Rating                 *int
	Feedback               string
	CancelReason           string

	CreatedAt   time.Time
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	details := aggregate.Details()
	charge := aggregate.Charge()

	var serviceAreaID *uuid.UUID
	if id := charge.ServiceAreaID; id != nil {
		raw := id.Bytes()
		serviceAreaID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		CompanyID:   aggregate.CompanyID().Bytes(),
		CourierID:   courierID,
		Status:      aggregate.Status().String(),

		RecipientName:   details.RecipientName,
		RecipientPhone:  details.RecipientPhone,
		PickupLat:       details.PickupPoint.Lat(),
		PickupLng:       details.PickupPoint.Lng(),
		DeliveryLat:     details.DeliveryPoint.Lat(),
		DeliveryLng:     details.DeliveryPoint.Lng(),
		PickupAddress:   details.PickupAddress,
		DeliveryAddress: details.DeliveryAddress,
		AddressDetail:   details.AddressDetail,
		PackageType:     details.PackageType.String(),
		PackageSize:     details.PackageSize.String(),
		DeliveryType:    details.DeliveryType.String(),
		Urgency:         details.Urgency.String(),
		Source:          details.Source,

		ServiceAreaID:    serviceAreaID,
		DistanceKm:       charge.DistanceKm,
		EstimatedTimeMin: charge.EstimatedTimeMin,
		Price:            charge.Price,
		Commission:       charge.Commission,
		CourierEarning:   charge.CourierEarning,

		IsDispatchedToCouriers: aggregate.IsDispatchedToCouriers(),
		Rating:                 aggregate.Rating(),
		Feedback:               aggregate.Feedback(),
		CancelReason:           aggregate.CancelReason(),

		CreatedAt:   aggregate.CreatedAt(),
		AcceptedAt:  aggregate.AcceptedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		CancelledAt: aggregate.CancelledAt(),
	}
}

// toDomain converts a database row back to an order aggregate via
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var serviceAreaID *kernel.UUID
	if dto.ServiceAreaID != nil {
		aID, areaErr := kernel.UUIDFromBytes((*dto.ServiceAreaID)[:])
		if areaErr != nil {
			return nil, areaErr
		}
		serviceAreaID = &aID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	packageType, err := order.ParsePackageType(dto.PackageType)
	if err != nil {
		return nil, err
	}
	packageSize, err := order.ParsePackageSize(dto.PackageSize)
	if err != nil {
		return nil, err
	}
	deliveryType, err := order.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}
	urgency, err := order.ParseUrgency(dto.Urgency)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.NewGeoPoint(dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		OrderNumber: dto.OrderNumber,
		CompanyID:   companyID,
		CourierID:   courierID,
		Details: order.Details{
			RecipientName:   dto.RecipientName,
			RecipientPhone:  dto.RecipientPhone,
			PickupPoint:     pickup,
			DeliveryPoint:   delivery,
			PickupAddress:   dto.PickupAddress,
			DeliveryAddress: dto.DeliveryAddress,
			AddressDetail:   dto.AddressDetail,
			PackageType:     packageType,
			PackageSize:     packageSize,
			DeliveryType:    deliveryType,
			Urgency:         urgency,
			Source:          dto.Source,
		},
		Charge: order.Charge{
			ServiceAreaID:    serviceAreaID,
			DistanceKm:       dto.DistanceKm,
			EstimatedTimeMin: dto.EstimatedTimeMin,
			Price:            dto.Price,
			Commission:       dto.Commission,
			CourierEarning:   dto.CourierEarning,
		},
		Status:                 status,
		IsDispatchedToCouriers: dto.IsDispatchedToCouriers,
		Rating:                 dto.Rating,
		Feedback:               dto.Feedback,
		CancelReason:           dto.CancelReason,
		CreatedAt:              dto.CreatedAt,
		AcceptedAt:             dto.AcceptedAt,
		PickedUpAt:             dto.PickedUpAt,
		DeliveredAt:            dto.DeliveredAt,
		CancelledAt:            dto.CancelledAt,
	})
}
