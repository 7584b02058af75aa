package commands

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrTargetStatusNotAllowed = errors.New(
		"target status must be IN_PROGRESS or DELIVERED")
)

// UpdateOrderStatusCommand represents a courier driving their assigned order
// forward: picking it up or delivering it.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	target    order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to advance an order. Only
// the two courier-driven targets are accepted; every other transition has
// its own command.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	target order.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the acting courier's identifier.
func (c UpdateOrderStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if target != order.InProgress && target != order.Delivered {
		return ErrTargetStatusNotAllowed
	}

	c.target = target
	return nil
}
