package ledger

import (
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus tracks how much of a daily bucket the company has
// settled.
type ReconciliationStatus int

const (
	ReconciliationStatusUnknown ReconciliationStatus = iota
	ReconciliationStatusPending
	ReconciliationStatusPartiallyPaid
	ReconciliationStatusPaid
)

// String implements fmt.Stringer.
func (s ReconciliationStatus) String() string {
	switch s {
	case ReconciliationStatusPending:
		return "PENDING"
	case ReconciliationStatusPartiallyPaid:
		return "PARTIALLY_PAID"
	case ReconciliationStatusPaid:
		return "PAID"
	default:
		return "UNKNOWN"
	}
}

// ParseReconciliationStatus converts the stored representation back to a
// ReconciliationStatus.
func ParseReconciliationStatus(str string) (ReconciliationStatus, error) {
	switch str {
	case "PENDING":
		return ReconciliationStatusPending, nil
	case "PARTIALLY_PAID":
		return ReconciliationStatusPartiallyPaid, nil
	case "PAID":
		return ReconciliationStatusPaid, nil
	default:
		return ReconciliationStatusUnknown, errs.NewValueIsInvalidError("reconciliation status")
	}
}

// Validate ensures the status is one of the known values.
func (s ReconciliationStatus) Validate() error {
	switch s {
	case ReconciliationStatusPending, ReconciliationStatusPartiallyPaid, ReconciliationStatusPaid:
		return nil
	default:
		return errs.NewValueIsInvalidError("reconciliation status")
	}
}

// ErrDailyReconciliationIsNotConstructed is returned when a
// DailyReconciliation was not created through its factory methods.
var ErrDailyReconciliationIsNotConstructed = errors.New(
	"DailyReconciliation must be created via NewDailyReconciliation constructor")

// Day truncates a timestamp to its UTC calendar day. Buckets are keyed by
// the value this returns, so every booking for the same company and day
// lands in one row.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DailyReconciliation aggregates one company's order figures for one
// calendar day. Rows are created lazily on the day's first order and updated
// in place as orders are created, delivered, cancelled and paid for.
//
// Status is derived, never set directly: the bucket is PAID exactly when
// paidAmount covers netAmount.
type DailyReconciliation struct {
	companyID          kernel.UUID
	day                time.Time
	totalOrders        int
	deliveredOrders    int
	cancelledOrders    int
	totalAmount        decimal.Decimal
	courierCost        decimal.Decimal
	platformCommission decimal.Decimal
	netAmount          decimal.Decimal
	paidAmount         decimal.Decimal
	status             ReconciliationStatus

	isConstructed bool
}

// NewDailyReconciliation creates an empty bucket for a company and day.
func NewDailyReconciliation(companyID kernel.UUID, day time.Time) (*DailyReconciliation, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}
	if day.IsZero() {
		return nil, errs.NewValueIsRequiredError("day")
	}

	return &DailyReconciliation{
		companyID:          companyID,
		day:                Day(day),
		totalAmount:        decimal.Zero,
		courierCost:        decimal.Zero,
		platformCommission: decimal.Zero,
		netAmount:          decimal.Zero,
		paidAmount:         decimal.Zero,
		status:             ReconciliationStatusPending,
		isConstructed:      true,
	}, nil
}

// RestoreDailyReconciliation reconstructs a bucket from persistence.
func RestoreDailyReconciliation(
	companyID kernel.UUID,
	day time.Time,
	totalOrders int,
	deliveredOrders int,
	cancelledOrders int,
	totalAmount decimal.Decimal,
	courierCost decimal.Decimal,
	platformCommission decimal.Decimal,
	netAmount decimal.Decimal,
	paidAmount decimal.Decimal,
	status ReconciliationStatus,
) (*DailyReconciliation, error) {
	r, err := NewDailyReconciliation(companyID, day)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if totalOrders < 0 || deliveredOrders < 0 || cancelledOrders < 0 {
		return nil, errs.NewValueIsInvalidError("order counters")
	}

	r.totalOrders = totalOrders
	r.deliveredOrders = deliveredOrders
	r.cancelledOrders = cancelledOrders
	r.totalAmount = totalAmount
	r.courierCost = courierCost
	r.platformCommission = platformCommission
	r.netAmount = netAmount
	r.paidAmount = paidAmount
	r.status = status
	return r, nil
}

// Validate ensures the DailyReconciliation was properly constructed.
func (r *DailyReconciliation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDailyReconciliationIsNotConstructed
	}
	return nil
}

// CompanyID returns the owning company's identifier.
func (r *DailyReconciliation) CompanyID() kernel.UUID { return r.companyID }

// Day returns the UTC calendar day this bucket covers.
func (r *DailyReconciliation) Day() time.Time { return r.day }

// TotalOrders returns the number of orders booked into the bucket.
func (r *DailyReconciliation) TotalOrders() int { return r.totalOrders }

// DeliveredOrders returns how many of the bucket's orders were delivered.
func (r *DailyReconciliation) DeliveredOrders() int { return r.deliveredOrders }

// CancelledOrders returns how many of the bucket's orders were cancelled.
func (r *DailyReconciliation) CancelledOrders() int { return r.cancelledOrders }

// TotalAmount returns the summed order prices.
func (r *DailyReconciliation) TotalAmount() decimal.Decimal { return r.totalAmount }

// CourierCost returns the summed courier earnings.
func (r *DailyReconciliation) CourierCost() decimal.Decimal { return r.courierCost }

// PlatformCommission returns the summed platform commissions.
func (r *DailyReconciliation) PlatformCommission() decimal.Decimal {
	return r.platformCommission
}

// NetAmount returns what the company owes for this day.
func (r *DailyReconciliation) NetAmount() decimal.Decimal { return r.netAmount }

// PaidAmount returns how much of the day the company has settled.
func (r *DailyReconciliation) PaidAmount() decimal.Decimal { return r.paidAmount }

// Status returns the derived settlement status.
func (r *DailyReconciliation) Status() ReconciliationStatus { return r.status }

// Outstanding returns the still-unpaid remainder of the bucket, never
// negative.
func (r *DailyReconciliation) Outstanding() decimal.Decimal {
	out := r.netAmount.Sub(r.paidAmount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// BookOrder records a newly created order's figures into the bucket.
func (r *DailyReconciliation) BookOrder(price, courierEarning, commission decimal.Decimal) {
	r.totalOrders++
	r.totalAmount = r.totalAmount.Add(price)
	r.courierCost = r.courierCost.Add(courierEarning)
	r.platformCommission = r.platformCommission.Add(commission)
	r.netAmount = r.netAmount.Add(price)
	r.refreshStatus()
}

// ReverseOrder backs a cancelled order's figures out of the bucket and
// counts the cancellation.
func (r *DailyReconciliation) ReverseOrder(price, courierEarning, commission decimal.Decimal) {
	r.totalOrders--
	r.cancelledOrders++
	r.totalAmount = r.totalAmount.Sub(price)
	r.courierCost = r.courierCost.Sub(courierEarning)
	r.platformCommission = r.platformCommission.Sub(commission)
	r.netAmount = r.netAmount.Sub(price)
	r.refreshStatus()
}

// MarkDelivered counts one of the bucket's orders as delivered.
func (r *DailyReconciliation) MarkDelivered() {
	r.deliveredOrders++
}

// ApplyPayment settles the bucket with up to amount and returns how much it
// actually consumed. A fully settled bucket consumes nothing, so callers can
// walk buckets oldest first and spend the remainder on the next one.
func (r *DailyReconciliation) ApplyPayment(amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}

	outstanding := r.Outstanding()
	if outstanding.IsZero() {
		return decimal.Zero
	}

	consumed := decimal.Min(amount, outstanding)
	r.paidAmount = r.paidAmount.Add(consumed)
	r.refreshStatus()
	return consumed
}

// CarryPayment restores a previously recorded payment onto a rebuilt
// bucket. Unlike ApplyPayment it does not clamp to the outstanding net, so
// money already paid survives a rebuild that lowered the bucket's figures.
func (r *DailyReconciliation) CarryPayment(amount decimal.Decimal) {
	if amount.IsNegative() {
		return
	}

	r.paidAmount = amount
	r.refreshStatus()
}

func (r *DailyReconciliation) refreshStatus() {
	switch {
	case r.paidAmount.IsZero():
		r.status = ReconciliationStatusPending
	case r.paidAmount.GreaterThanOrEqual(r.netAmount):
		r.status = ReconciliationStatusPaid
	default:
		r.status = ReconciliationStatusPartiallyPaid
	}
}
