package courier

import (
	"errors"
	"fmt"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier instance was not
	// created through the NewCourier factory method.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrCourierIsBusy is returned when attempting to bind a courier who
	// already carries an active order. Courier availability is mutually
	// exclusive with having an active order.
	ErrCourierIsBusy = errors.New("courier already has an active order")
)

// Status represents a courier's approval state on the platform.
// Only Approved couriers may accept orders.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status while the operator reviews the courier.
	Pending

	// Approved couriers may accept and deliver orders.
	Approved

	// Rejected couriers were declined by the operator.
	Rejected

	// Suspended couriers were approved once and later blocked.
	Suspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Approved:  "Approved",
		Rejected:  "Rejected",
		Suspended: "Suspended",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Courier represents a delivery courier in the system.
//
// Courier follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Availability is mutually exclusive with carrying an active order;
//     only the lifecycle and dispatch handlers flip it
//   - The running rating average is derived from the stored sum and count,
//     never recomputed from individual ratings
//
// Lifecycle statistics (totalDeliveries, rating) accumulate over the
// courier's lifetime and are only ever incremented by order transitions.
type Courier struct {
	id              kernel.UUID
	name            string
	phone           string
	status          Status
	isAvailable     bool
	totalDeliveries int
	ratingSum       int
	ratingCount     int

	isConstructed bool
}

// NewCourier creates a new Courier in Pending status, unavailable until
// approved and explicitly brought online.
func NewCourier(id kernel.UUID, name string, phone string) (*Courier, error) {
	c := &Courier{
		phone:         phone,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence, including
// availability and lifetime statistics. Used only by repository
// implementations.
func RestoreCourier(
	id kernel.UUID,
	name string,
	phone string,
	status Status,
	isAvailable bool,
	totalDeliveries int,
	ratingSum int,
	ratingCount int,
) (*Courier, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if totalDeliveries < 0 || ratingSum < 0 || ratingCount < 0 {
		return nil, errs.NewValueIsInvalidError("courier statistics")
	}

	c, err := NewCourier(id, name, phone)
	if err != nil {
		return nil, err
	}

	c.status = status
	c.isAvailable = isAvailable
	c.totalDeliveries = totalDeliveries
	c.ratingSum = ratingSum
	c.ratingCount = ratingCount
	return c, nil
}

// Validate ensures the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string {
	return c.phone
}

// Status returns the courier's approval state.
func (c *Courier) Status() Status {
	return c.status
}

// IsApproved reports whether the courier may accept orders.
func (c *Courier) IsApproved() bool {
	return c.status == Approved
}

// IsAvailable reports whether the courier is online and free to take an order.
func (c *Courier) IsAvailable() bool {
	return c.isAvailable
}

// TotalDeliveries returns the courier's lifetime delivery counter.
func (c *Courier) TotalDeliveries() int {
	return c.totalDeliveries
}

// RatingSum returns the accumulated sum of all ratings received.
func (c *Courier) RatingSum() int {
	return c.ratingSum
}

// RatingCount returns the number of ratings received.
func (c *Courier) RatingCount() int {
	return c.ratingCount
}

// Rating returns the courier's running average rating, or 0 when unrated.
func (c *Courier) Rating() float64 {
	if c.ratingCount == 0 {
		return 0
	}
	return float64(c.ratingSum) / float64(c.ratingCount)
}

// MarkBusy binds the courier to an active order by clearing availability.
// Returns ErrCourierIsBusy if the courier already carries an active order,
// preventing simultaneous assignment to two orders.
func (c *Courier) MarkBusy() error {
	if !c.isAvailable {
		return ErrCourierIsBusy
	}
	c.isAvailable = false
	return nil
}

// MarkAvailable releases the courier back to the pool. Called as part of the
// same transition that moves the bound order to a terminal-for-the-courier
// state (delivered or cancelled).
func (c *Courier) MarkAvailable() {
	c.isAvailable = true
}

// RecordDelivery increments the lifetime delivery counter.
// Called exactly once per delivered order.
func (c *Courier) RecordDelivery() {
	c.totalDeliveries++
}

// AddRating folds a new rating into the running average:
// (sum_of_existing_ratings + value) / (count + 1).
// The value must be within [1,5].
func (c *Courier) AddRating(value int) error {
	if value < MinRating || value > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", value, MinRating, MaxRating)
	}
	c.ratingSum += value
	c.ratingCount++
	return nil
}

// MinRating and MaxRating bound the accepted rating values.
const (
	MinRating = 1
	MaxRating = 5
)

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
