package ports

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
)

// NotificationPort is the outbound gateway for push messages to couriers and
// companies. Deliveries are best effort: implementations log failures and
// return nil, callers invoke them only after the surrounding transaction has
// committed, and no business decision may depend on the outcome.
type NotificationPort interface {
	// NotifyNewOrderToCourierPool announces a dispatched order to every
	// courier in the pool.
	NotifyNewOrderToCourierPool(ctx context.Context, aggregate *order.Order, courierIDs []kernel.UUID)

	// NotifyOrderAssigned tells the winning courier the order is theirs.
	NotifyOrderAssigned(ctx context.Context, aggregate *order.Order, courierID kernel.UUID)

	// NotifyOrderWithdrawn tells the rest of the pool the order is gone.
	NotifyOrderWithdrawn(ctx context.Context, aggregate *order.Order, courierIDs []kernel.UUID)

	// NotifyOrderStatusChanged tells the owning company about a lifecycle
	// change.
	NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order)
}
