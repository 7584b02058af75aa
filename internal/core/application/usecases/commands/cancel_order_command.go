package commands

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order, either by the
// owning company or by an upstream channel cancelling remotely. Only
// company-initiated cancellations are subject to the cancellation time box.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	reason             string
	initiatedByCompany bool

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command. The reason may be
// empty.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	reason string,
	initiatedByCompany bool,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		reason:             reason,
		initiatedByCompany: initiatedByCompany,
		guard:              guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the free-text cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// InitiatedByCompany reports whether the owning company asked for the
// cancellation, as opposed to an upstream channel.
func (c CancelOrderCommand) InitiatedByCompany() bool {
	return c.initiatedByCompany
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
