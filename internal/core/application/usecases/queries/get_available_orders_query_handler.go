package queries

import (
	"context"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads the courier pool straight from the
// database, bypassing the aggregate. Oldest orders come first so they do not
// starve behind fresh ones.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for courier pool
// queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query. Only dispatched, unassigned pending orders
// qualify.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			pickup_lat,
			pickup_lng,
			delivery_lat,
			delivery_lng,
			package_size,
			delivery_type,
			urgency,
			distance_km,
			estimated_time_min,
			courier_earning,
			created_at
		FROM orders
		WHERE status = ?
		  AND is_dispatched_to_couriers
		  AND courier_id IS NULL
		ORDER BY created_at
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                             uuid.UUID
			orderNumber                    string
			pickupLat, pickupLng           float64
			deliveryLat, deliveryLng       float64
			packageSize, deliveryType      string
			urgency                        string
			distanceKm, courierEarning     decimal.Decimal
			estimatedTimeMin               int
			createdAt                      time.Time
		)

		if err = rows.Scan(
			&id,
			&orderNumber,
			&pickupLat,
			&pickupLng,
			&deliveryLat,
			&deliveryLng,
			&packageSize,
			&deliveryType,
			&urgency,
			&distanceKm,
			&estimatedTimeMin,
			&courierEarning,
			&createdAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pickup, pErr := kernel.NewGeoPoint(pickupLat, pickupLng)
		if pErr != nil {
			return nil, pErr
		}
		delivery, dErr := kernel.NewGeoPoint(deliveryLat, deliveryLng)
		if dErr != nil {
			return nil, dErr
		}

		orders = append(orders, GetAvailableOrdersQueryResponse{
			ID:               orderID,
			OrderNumber:      orderNumber,
			PickupPoint:      pickup,
			DeliveryPoint:    delivery,
			PackageSize:      packageSize,
			DeliveryType:     deliveryType,
			Urgency:          urgency,
			DistanceKm:       distanceKm,
			EstimatedTimeMin: estimatedTimeMin,
			CourierEarning:   courierEarning,
			CreatedAt:        createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
