package commands

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/courier"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents the company's one-time rating of a delivered
// order.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	companyID kernel.UUID
	rating    int
	feedback  string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a rating command. Only the company that owns
// the order may rate it. Rating must be in [1,5]; feedback may be empty.
func NewRateOrderCommand(orderID, companyID kernel.UUID, rating int, feedback string) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		feedback: feedback,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCompanyID(companyID),
		cmd.setRating(rating),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the rated order's identifier.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CompanyID returns the identifier of the company submitting the rating.
func (c RateOrderCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Rating returns the rating value.
func (c RateOrderCommand) Rating() int {
	return c.rating
}

// Feedback returns the free-text feedback.
func (c RateOrderCommand) Feedback() string {
	return c.feedback
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *RateOrderCommand) setRating(rating int) error {
	if rating < courier.MinRating || rating > courier.MaxRating {
		return errs.NewValueIsOutOfRangeError(
			"rating", rating, courier.MinRating, courier.MaxRating)
	}

	c.rating = rating
	return nil
}
