package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCancellationWindowExpired is returned when a company tries to cancel
	// an accepted order after the configured window since creation. Upstream
	// integrations are exempt from the window.
	ErrCancellationWindowExpired = errors.New("cancellation window expired")

	// ErrChargeIsInconsistent is returned when commission + courierEarning
	// drifts from price by more than one cent. A one-cent mismatch is a
	// known tolerance of rounding each figure independently.
	ErrChargeIsInconsistent = errors.New("commission + courierEarning must equal price")
)

// chargeTolerance is the accepted drift between price and the sum of its
// split, caused by rounding each figure to two decimals independently.
var chargeTolerance = decimal.NewFromFloat(0.01)

// Details carries the request attributes of an order: who receives it, where
// it moves, and what is being shipped.
type Details struct {
	RecipientName   string
	RecipientPhone  string
	PickupPoint     kernel.GeoPoint
	DeliveryPoint   kernel.GeoPoint
	PickupAddress   string
	DeliveryAddress string
	AddressDetail   string
	PackageType     PackageType
	PackageSize     PackageSize
	DeliveryType    DeliveryType
	Urgency         Urgency
	Source          string
}

// Validate checks the structural completeness of the details: recipient,
// both points and all package attributes must be present and well formed.
func (d Details) Validate() error {
	if d.RecipientName == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	return errors.Join(
		d.PickupPoint.Validate(),
		d.DeliveryPoint.Validate(),
		d.PackageType.Validate(),
		d.PackageSize.Validate(),
		d.DeliveryType.Validate(),
		d.Urgency.Validate(),
	)
}

// Charge carries the computed financial figures of an order as produced by
// the pricing engine: the resolved zone, distance, time estimate, and the
// price split between platform and courier.
type Charge struct {
	ServiceAreaID    *kernel.UUID
	DistanceKm       decimal.Decimal
	EstimatedTimeMin int
	Price            decimal.Decimal
	Commission       decimal.Decimal
	CourierEarning   decimal.Decimal
}

// Order represents a delivery order. It is the aggregate root that manages
// the order lifecycle from creation through courier acceptance to delivery
// or cancellation.
//
// Order follows these invariants:
//   - commission + courierEarning equals price within one cent
//   - a Pending order never carries a courier; an Accepted, InProgress, or
//     Delivered order always does
//   - status transitions follow the Status state machine
//   - orders are never deleted; cancellation and rejection are terminal
//     states
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	orderNumber string
	companyID   kernel.UUID
	courierID   *kernel.UUID

	details Details
	charge  Charge

	status                 Status
	isDispatchedToCouriers bool

	rating       *int
	feedback     string
	cancelReason string

	createdAt   time.Time
	acceptedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderNumber: unique human-readable number assigned by the dispatcher
//   - companyID: the owning company (must be a valid UUID)
//   - details: validated request attributes
//   - charge: pricing figures produced by the pricing engine
//   - dispatchToCouriers: whether the order is immediately visible in the
//     courier pool (auto dispatch) or awaits a manual courier request
//   - now: creation timestamp
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	companyID kernel.UUID,
	details Details,
	charge Charge,
	dispatchToCouriers bool,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:                 Pending,
		isDispatchedToCouriers: dispatchToCouriers,
		createdAt:              now,
		isConstructed:          true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCompanyID(companyID),
		o.setDetails(details),
		o.setCharge(charge),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the flat field set used to rebuild an Order from persistence.
type Snapshot struct {
	ID                     kernel.UUID
	OrderNumber            string
	CompanyID              kernel.UUID
	CourierID              *kernel.UUID
	Details                Details
	Charge                 Charge
	Status                 Status
	IsDispatchedToCouriers bool
	Rating                 *int
	Feedback               string
	CancelReason           string
	CreatedAt              time.Time
	AcceptedAt             *time.Time
	PickedUpAt             *time.Time
	DeliveredAt            *time.Time
	CancelledAt            *time.Time
}

// RestoreOrder reconstructs an Order from a persistence snapshot, validating
// the status/courier consistency invariant. Used only by repository
// implementations.
func RestoreOrder(snap Snapshot) (*Order, error) {
	if err := snap.Status.Validate(); err != nil {
		return nil, err
	}
	if err := snap.Status.ValidateCanHaveCourier(snap.CourierID != nil); err != nil {
		return nil, err
	}
	if snap.CourierID != nil {
		if err := snap.CourierID.Validate(); err != nil {
			return nil, err
		}
	}

	o, err := NewOrder(snap.ID, snap.OrderNumber, snap.CompanyID, snap.Details, snap.Charge,
		snap.IsDispatchedToCouriers, snap.CreatedAt)
	if err != nil {
		return nil, err
	}

	o.courierID = snap.CourierID
	o.status = snap.Status
	o.rating = snap.Rating
	o.feedback = snap.Feedback
	o.cancelReason = snap.CancelReason
	o.acceptedAt = snap.AcceptedAt
	o.pickedUpAt = snap.PickedUpAt
	o.deliveredAt = snap.DeliveredAt
	o.cancelledAt = snap.CancelledAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the unique human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CompanyID returns the owning company's identifier.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// Courier returns the assigned courier's ID, or nil before acceptance.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Details returns the order's request attributes.
func (o *Order) Details() Details {
	return o.details
}

// Charge returns the order's pricing figures.
func (o *Order) Charge() Charge {
	return o.charge
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsDispatchedToCouriers reports whether the order is visible in the courier
// pool.
func (o *Order) IsDispatchedToCouriers() bool {
	return o.isDispatchedToCouriers
}

// Rating returns the attached rating, or nil when unrated.
func (o *Order) Rating() *int {
	return o.rating
}

// Feedback returns the free-text feedback attached with the rating.
func (o *Order) Feedback() string {
	return o.feedback
}

// CancelReason returns the reason recorded at cancellation.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns the acceptance timestamp, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// PickedUpAt returns the pickup timestamp, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns the cancellation timestamp, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// Accept binds the order to the courier who won the acceptance race and
// moves it to Accepted.
//
// Under contention the atomic conditional update in the repository decides
// the winner; this method enforces the same guards for the in-memory
// aggregate: the order must be Pending and must not already carry a courier.
func (o *Order) Accept(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return invalidTransitionError(o.status, "already has a courier")
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.acceptedAt = &now
	return nil
}

// Start marks the package as picked up, moving the order to InProgress.
func (o *Order) Start(now time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickedUpAt = &now
	return nil
}

// Deliver marks the order as delivered, the terminal success state.
// The caller must, in the same transaction, free the courier, increment the
// courier's delivery counter, and book the ledger "delivered" event.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel moves the order to the terminal Cancelled state.
//
// Cancellation is allowed from Pending and Accepted only. When initiated by
// the owning company and the order has already left Pending, the elapsed
// time since creation must be within the window; cancellations triggered by
// an upstream integration are exempt. Pending orders are not time-boxed.
//
// The caller must, in the same transaction, free the bound courier (if any)
// and book the ledger "cancelled" event that reverses the creation booking.
func (o *Order) Cancel(reason string, initiatedByCompany bool, window time.Duration, now time.Time) error {
	if initiatedByCompany && o.status != Pending && now.Sub(o.createdAt) > window {
		return fmt.Errorf("%w: %s elapsed since creation", ErrCancellationWindowExpired,
			now.Sub(o.createdAt).Round(time.Second))
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelReason = reason
	o.cancelledAt = &now
	return nil
}

// HoldForApproval parks a freshly created order until an operator approves
// its price. Held orders are withdrawn from the courier pool.
func (o *Order) HoldForApproval() error {
	newStatus, err := o.status.HoldForApproval()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.isDispatchedToCouriers = false
	return nil
}

// ApprovePricing releases a held order back to Pending.
func (o *Order) ApprovePricing() error {
	newStatus, err := o.status.ApprovePricing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RejectPricing moves a held order to the terminal Rejected state.
// The caller must reverse the creation-time ledger booking in the same
// transaction, as with a cancellation.
func (o *Order) RejectPricing(now time.Time) error {
	newStatus, err := o.status.RejectPricing()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancelledAt = &now
	return nil
}

// Dispatch makes the order visible in the courier pool. Legal only while the
// order is Pending and unassigned; calling it on an already dispatched order
// is a no-op so that a repeated manual courier request stays idempotent.
func (o *Order) Dispatch() error {
	if o.status != Pending || o.courierID != nil {
		return invalidTransitionError(o.status, "cannot be dispatched to couriers")
	}

	o.isDispatchedToCouriers = true
	return nil
}

// Rate attaches a rating to a delivered order. A rating may be attached
// exactly once and must be within [1,5]; the caller folds the value into the
// courier's running average in the same transaction.
func (o *Order) Rate(value int, feedback string) error {
	if o.status != Delivered {
		return invalidTransitionError(o.status, "cannot be rated")
	}
	if o.rating != nil {
		return fmt.Errorf("%w: order is already rated", ErrInvalidTransition)
	}
	if value < 1 || value > 5 {
		return errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	o.rating = &value
	o.feedback = feedback
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	o.companyID = companyID
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	o.details = details
	return nil
}

func (o *Order) setCharge(charge Charge) error {
	if charge.ServiceAreaID != nil {
		if err := charge.ServiceAreaID.Validate(); err != nil {
			return err
		}
	}
	if charge.DistanceKm.IsNegative() {
		return errs.NewValueIsInvalidError("distance")
	}
	if charge.EstimatedTimeMin < 0 {
		return errs.NewValueIsInvalidError("estimatedTime")
	}
	if charge.Price.IsNegative() || charge.Commission.IsNegative() || charge.CourierEarning.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	drift := charge.Price.Sub(charge.Commission.Add(charge.CourierEarning)).Abs()
	if drift.GreaterThan(chargeTolerance) {
		return fmt.Errorf("%w: drift is %s", ErrChargeIsInconsistent, drift)
	}

	o.charge = charge
	return nil
}
