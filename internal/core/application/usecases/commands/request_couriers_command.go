package commands

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

var ErrRequestCouriersCommandIsNotConstructed = errors.New(
	"RequestCouriersCommand must be created via NewRequestCouriersCommand constructor",
)

// RequestCouriersCommand represents a manual dispatch: putting a pending
// order (back) in front of the courier pool. Repeating it for an already
// dispatched order just re-announces it.
type RequestCouriersCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCouriersCommand creates a manual dispatch command.
func NewRequestCouriersCommand(orderID kernel.UUID) (RequestCouriersCommand, error) {
	cmd := RequestCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RequestCouriersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCouriersCommand) Validate() error {
	return c.guard.Validate(ErrRequestCouriersCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c RequestCouriersCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RequestCouriersCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
