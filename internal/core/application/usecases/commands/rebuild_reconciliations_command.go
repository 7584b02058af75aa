package commands

import (
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"
)

var ErrRebuildReconciliationsCommandIsNotConstructed = errors.New(
	"RebuildReconciliationsCommand must be created via NewRebuildReconciliationsCommand constructor",
)

// RebuildReconciliationsCommand represents a recomputation of every
// reconciliation bucket of one calendar day from the orders table. Payments
// already recorded on the buckets are kept.
type RebuildReconciliationsCommand struct { //nolint:recvcheck //using for validation
	day time.Time

	guard guard.ConstructorGuard
}

// NewRebuildReconciliationsCommand creates a rebuild command. The day is
// normalized to its UTC midnight.
func NewRebuildReconciliationsCommand(day time.Time) (RebuildReconciliationsCommand, error) {
	cmd := RebuildReconciliationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDay(day); err != nil {
		return RebuildReconciliationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RebuildReconciliationsCommand) Validate() error {
	return c.guard.Validate(ErrRebuildReconciliationsCommandIsNotConstructed)
}

// Day returns the calendar day to rebuild, at UTC midnight.
func (c RebuildReconciliationsCommand) Day() time.Time {
	return c.day
}

func (c *RebuildReconciliationsCommand) setDay(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("day")
	}

	c.day = ledger.Day(day)
	return nil
}
