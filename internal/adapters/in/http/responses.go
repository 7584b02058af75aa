package http

import (
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/application/usecases/queries"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type orderResponse struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"order_number"`
	Status           string          `json:"status"`
	DistanceKm       decimal.Decimal `json:"distance_km"`
	EstimatedTimeMin int             `json:"estimated_time_min"`
	Price            decimal.Decimal `json:"price"`
	Commission       decimal.Decimal `json:"commission"`
	CourierEarning   decimal.Decimal `json:"courier_earning"`
	CreatedAt        time.Time       `json:"created_at"`
}

func toOrderResponse(o *order.Order) orderResponse {
	charge := o.Charge()
	return orderResponse{
		ID:               o.ID().String(),
		OrderNumber:      o.OrderNumber(),
		Status:           o.Status().String(),
		DistanceKm:       charge.DistanceKm,
		EstimatedTimeMin: charge.EstimatedTimeMin,
		Price:            charge.Price,
		Commission:       charge.Commission,
		CourierEarning:   charge.CourierEarning,
		CreatedAt:        o.CreatedAt(),
	}
}

type availableOrderResponse struct {
	ID               string          `json:"id"`
	OrderNumber      string          `json:"order_number"`
	PickupLat        float64         `json:"pickup_lat"`
	PickupLng        float64         `json:"pickup_lng"`
	DeliveryLat      float64         `json:"delivery_lat"`
	DeliveryLng      float64         `json:"delivery_lng"`
	PackageSize      string          `json:"package_size"`
	DeliveryType     string          `json:"delivery_type"`
	Urgency          string          `json:"urgency"`
	DistanceKm       decimal.Decimal `json:"distance_km"`
	EstimatedTimeMin int             `json:"estimated_time_min"`
	CourierEarning   decimal.Decimal `json:"courier_earning"`
	CreatedAt        time.Time       `json:"created_at"`
}

func toAvailableOrderResponses(rows []queries.GetAvailableOrdersQueryResponse) []availableOrderResponse {
	out := make([]availableOrderResponse, len(rows))
	for i, row := range rows {
		out[i] = availableOrderResponse{
			ID:               row.ID.String(),
			OrderNumber:      row.OrderNumber,
			PickupLat:        row.PickupPoint.Lat(),
			PickupLng:        row.PickupPoint.Lng(),
			DeliveryLat:      row.DeliveryPoint.Lat(),
			DeliveryLng:      row.DeliveryPoint.Lng(),
			PackageSize:      row.PackageSize,
			DeliveryType:     row.DeliveryType,
			Urgency:          row.Urgency,
			DistanceKm:       row.DistanceKm,
			EstimatedTimeMin: row.EstimatedTimeMin,
			CourierEarning:   row.CourierEarning,
			CreatedAt:        row.CreatedAt,
		}
	}
	return out
}

type balanceResponse struct {
	CompanyID         string           `json:"company_id"`
	CurrentBalance    decimal.Decimal  `json:"current_balance"`
	TotalDebts        decimal.Decimal  `json:"total_debts"`
	TotalCredits      decimal.Decimal  `json:"total_credits"`
	LastPaymentDate   *time.Time       `json:"last_payment_date,omitempty"`
	LastPaymentAmount *decimal.Decimal `json:"last_payment_amount,omitempty"`
}

func toBalanceResponse(row queries.GetCompanyBalanceQueryResponse) balanceResponse {
	return balanceResponse{
		CompanyID:         row.CompanyID.String(),
		CurrentBalance:    row.CurrentBalance,
		TotalDebts:        row.TotalDebts,
		TotalCredits:      row.TotalCredits,
		LastPaymentDate:   row.LastPaymentDate,
		LastPaymentAmount: row.LastPaymentAmount,
	}
}

type reconciliationResponse struct {
	Day                string          `json:"day"`
	TotalOrders        int             `json:"total_orders"`
	DeliveredOrders    int             `json:"delivered_orders"`
	CancelledOrders    int             `json:"cancelled_orders"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	CourierCost        decimal.Decimal `json:"courier_cost"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
	NetAmount          decimal.Decimal `json:"net_amount"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	Status             string          `json:"status"`
}

func toReconciliationResponses(rows []queries.GetDailyReconciliationsQueryResponse) []reconciliationResponse {
	out := make([]reconciliationResponse, len(rows))
	for i, row := range rows {
		out[i] = reconciliationResponse{
			Day:                row.Day.Format("2006-01-02"),
			TotalOrders:        row.TotalOrders,
			DeliveredOrders:    row.DeliveredOrders,
			CancelledOrders:    row.CancelledOrders,
			TotalAmount:        row.TotalAmount,
			CourierCost:        row.CourierCost,
			PlatformCommission: row.PlatformCommission,
			NetAmount:          row.NetAmount,
			PaidAmount:         row.PaidAmount,
			Status:             row.Status,
		}
	}
	return out
}
