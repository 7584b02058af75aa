package commands

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

var ErrReviewOrderPricingCommandIsNotConstructed = errors.New(
	"ReviewOrderPricingCommand must be created via NewReviewOrderPricingCommand constructor",
)

// ReviewOrderPricingCommand represents the manual price review demanded by
// some channels: the order waits in price approval until an operator either
// releases it back to pending or rejects it for good.
type ReviewOrderPricingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	approve  bool
	dispatch bool

	guard guard.ConstructorGuard
}

// NewReviewOrderPricingCommand creates a price review command. dispatch only
// matters on approval: it releases the order straight into the courier pool.
func NewReviewOrderPricingCommand(
	orderID kernel.UUID,
	approve bool,
	dispatch bool,
) (ReviewOrderPricingCommand, error) {
	cmd := ReviewOrderPricingCommand{
		approve:  approve,
		dispatch: dispatch,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReviewOrderPricingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewOrderPricingCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderPricingCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c ReviewOrderPricingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Approve reports whether the price was approved.
func (c ReviewOrderPricingCommand) Approve() bool {
	return c.approve
}

// Dispatch reports whether an approved order should enter the courier pool
// immediately.
func (c ReviewOrderPricingCommand) Dispatch() bool {
	return c.dispatch
}

func (c *ReviewOrderPricingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
