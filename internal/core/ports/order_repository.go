package ports

import (
	"context"
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
)

// ErrDuplicateOrderNumber is returned by Add when the order's number
// collides with an existing one. Callers may draw a new number and retry.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage. The order must be
	// valid and not already exist in the repository; a colliding order
	// number yields ErrDuplicateOrderNumber.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNumber retrieves an order by its human-readable number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// TryAssignCourier atomically assigns a courier to a pending,
	// unassigned order with a single conditional update. It reports
	// whether this call won the assignment; false means another courier
	// got there first or the order already left the pending state. The
	// decision is made from the update's affected-row count, never from a
	// prior read.
	TryAssignCourier(ctx context.Context, orderID, courierID kernel.UUID, acceptedAt time.Time) (bool, error)

	// GetAllDispatchedPending retrieves every pending, unassigned order
	// currently visible in the courier pool.
	GetAllDispatchedPending(ctx context.Context) ([]*order.Order, error)

	// GetAllCreatedBetween retrieves a company's orders created in the
	// half-open interval [from, to). Used to rebuild reconciliation
	// buckets from the order history.
	GetAllCreatedBetween(ctx context.Context, companyID kernel.UUID, from, to time.Time) ([]*order.Order, error)
}
