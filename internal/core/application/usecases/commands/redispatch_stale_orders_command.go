package commands

import (
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

var ErrRedispatchStaleOrdersCommandIsNotConstructed = errors.New(
	"RedispatchStaleOrdersCommand must be created via NewRedispatchStaleOrdersCommand constructor",
)

// RedispatchStaleOrdersCommand represents a sweep over pending, unassigned
// orders: every order that has sat in the pool longer than maxAge gets
// re-announced to the couriers.
type RedispatchStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewRedispatchStaleOrdersCommand creates a redispatch sweep command.
func NewRedispatchStaleOrdersCommand(maxAge time.Duration) (RedispatchStaleOrdersCommand, error) {
	cmd := RedispatchStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return RedispatchStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RedispatchStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRedispatchStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may wait unassigned before it is
// re-announced.
func (c RedispatchStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *RedispatchStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidError("maxAge")
	}

	c.maxAge = maxAge
	return nil
}
