package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request bodies for the write side. Shape checks live in the validate tags;
// everything semantic (enum values, geofence, lifecycle) is decided by the
// domain after parsing.

type createOrderRequest struct {
	CompanyID       string  `json:"company_id" validate:"required,uuid"`
	RecipientName   string  `json:"recipient_name" validate:"required"`
	RecipientPhone  string  `json:"recipient_phone" validate:"required"`
	PickupLat       float64 `json:"pickup_lat" validate:"latitude"`
	PickupLng       float64 `json:"pickup_lng" validate:"longitude"`
	DeliveryLat     float64 `json:"delivery_lat" validate:"latitude"`
	DeliveryLng     float64 `json:"delivery_lng" validate:"longitude"`
	PickupAddress   string  `json:"pickup_address" validate:"required"`
	DeliveryAddress string  `json:"delivery_address" validate:"required"`
	AddressDetail   string  `json:"address_detail"`
	PackageType     string  `json:"package_type" validate:"required"`
	PackageSize     string  `json:"package_size" validate:"required"`
	DeliveryType    string  `json:"delivery_type" validate:"required"`
	Urgency         string  `json:"urgency" validate:"required"`
	Source          string  `json:"source"`

	ExternalDistanceKm *decimal.Decimal `json:"external_distance_km"`
	ExternalTimeMin    *int             `json:"external_time_min"`

	// DispatchToCouriers defaults to true when omitted.
	DispatchToCouriers *bool `json:"dispatch_to_couriers"`
	RequiresApproval   bool  `json:"requires_approval"`
}

type acceptOrderRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid"`
}

type updateOrderStatusRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required"`
}

type cancelOrderRequest struct {
	Reason             string `json:"reason"`
	InitiatedByCompany bool   `json:"initiated_by_company"`
}

type rateOrderRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required"`
	Feedback  string `json:"feedback"`
}

type reviewOrderPricingRequest struct {
	Approve  bool `json:"approve"`
	Dispatch bool `json:"dispatch"`
}

type completePaymentRequest struct {
	CompanyID string          `json:"company_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	PaidAt    *time.Time      `json:"paid_at"`
}
