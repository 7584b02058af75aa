package commands

import (
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand represents a company's confirmed payment to the
// platform.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	amount    decimal.Decimal
	paidAt    time.Time

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a payment command. A zero paidAt means
// now.
func NewCompletePaymentCommand(
	companyID kernel.UUID,
	amount decimal.Decimal,
	paidAt time.Time,
) (CompletePaymentCommand, error) {
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	cmd := CompletePaymentCommand{
		paidAt: paidAt,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setAmount(amount),
	); err != nil {
		return CompletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// CompanyID returns the paying company's identifier.
func (c CompletePaymentCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Amount returns the paid amount.
func (c CompletePaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// PaidAt returns when the payment was made.
func (c CompletePaymentCommand) PaidAt() time.Time {
	return c.paidAt
}

func (c *CompletePaymentCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *CompletePaymentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}
