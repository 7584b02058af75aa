package queries

import (
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves the courier pool: pending orders that
// were dispatched to couriers and have no courier assigned yet.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	handler := NewGetAvailableOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available orders: %w", err)
//	}
//
//	fmt.Printf("%d orders waiting for a courier\n", len(orders))
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for the courier pool. This is a
// parameterless query.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse carries what a courier needs to decide on
// an order: where it goes, how big it is, and what it pays.
type GetAvailableOrdersQueryResponse struct {
	ID               kernel.UUID
	OrderNumber      string
	PickupPoint      kernel.GeoPoint
	DeliveryPoint    kernel.GeoPoint
	PackageSize      string
	DeliveryType     string
	Urgency          string
	DistanceKm       decimal.Decimal
	EstimatedTimeMin int
	CourierEarning   decimal.Decimal
	CreatedAt        time.Time
}
