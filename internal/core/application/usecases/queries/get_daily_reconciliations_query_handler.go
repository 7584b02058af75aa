package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDailyReconciliationsQueryHandler lists a company's settlement buckets
// from the database, newest day first.
type GetDailyReconciliationsQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyReconciliationsQueryHandler creates a handler for
// reconciliation listing queries.
func NewGetDailyReconciliationsQueryHandler(db *gorm.DB) GetDailyReconciliationsQueryHandler {
	return GetDailyReconciliationsQueryHandler{db: db}
}

// Handle executes the query. A company with no bookings yields an empty
// slice, not an error.
func (h GetDailyReconciliationsQueryHandler) Handle(
	ctx context.Context,
	query GetDailyReconciliationsQuery,
) ([]GetDailyReconciliationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	buckets := make([]GetDailyReconciliationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			day,
			total_orders,
			delivered_orders,
			cancelled_orders,
			total_amount,
			courier_cost,
			platform_commission,
			net_amount,
			paid_amount,
			status
		FROM daily_reconciliations
		WHERE company_id = ?
		ORDER BY day DESC
	`, query.CompanyID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			day                                          time.Time
			totalOrders, deliveredOrders, cancelled      int
			totalAmount, courierCost, commission         decimal.Decimal
			netAmount, paidAmount                        decimal.Decimal
			status                                       string
		)

		if err = rows.Scan(
			&day,
			&totalOrders,
			&deliveredOrders,
			&cancelled,
			&totalAmount,
			&courierCost,
			&commission,
			&netAmount,
			&paidAmount,
			&status,
		); err != nil {
			return nil, err
		}

		buckets = append(buckets, GetDailyReconciliationsQueryResponse{
			Day:                day,
			TotalOrders:        totalOrders,
			DeliveredOrders:    deliveredOrders,
			CancelledOrders:    cancelled,
			TotalAmount:        totalAmount,
			CourierCost:        courierCost,
			PlatformCommission: commission,
			NetAmount:          netAmount,
			PaidAmount:         paidAmount,
			Status:             status,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
