// Package notify implements the outbound notification gateway. The current
// implementation writes structured log lines instead of calling a push
// provider; swapping in a real provider only touches this package because
// the port keeps deliveries fire-and-forget.
package notify

import (
	"context"
	"log/slog"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
)

// LogNotifier logs every notification it is asked to deliver. It never
// fails, matching the port's best-effort contract.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a logging notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// NotifyNewOrderToCourierPool announces a dispatched order to the pool.
func (n *LogNotifier) NotifyNewOrderToCourierPool(ctx context.Context, aggregate *order.Order, courierIDs []kernel.UUID) {
	n.logger.InfoContext(ctx, "new order announced to courier pool",
		"order_number", aggregate.OrderNumber(),
		"pool_size", len(courierIDs),
	)
}

// NotifyOrderAssigned tells the winning courier the order is theirs.
func (n *LogNotifier) NotifyOrderAssigned(ctx context.Context, aggregate *order.Order, courierID kernel.UUID) {
	n.logger.InfoContext(ctx, "order assigned to courier",
		"order_number", aggregate.OrderNumber(),
		"courier_id", courierID.String(),
	)
}

// NotifyOrderWithdrawn tells the rest of the pool the order is gone.
func (n *LogNotifier) NotifyOrderWithdrawn(ctx context.Context, aggregate *order.Order, courierIDs []kernel.UUID) {
	n.logger.InfoContext(ctx, "order withdrawn from courier pool",
		"order_number", aggregate.OrderNumber(),
		"pool_size", len(courierIDs),
	)
}

// NotifyOrderStatusChanged tells the owning company about a lifecycle change.
func (n *LogNotifier) NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) {
	n.logger.InfoContext(ctx, "order status changed",
		"order_number", aggregate.OrderNumber(),
		"company_id", aggregate.CompanyID().String(),
		"status", aggregate.Status().String(),
	)
}
