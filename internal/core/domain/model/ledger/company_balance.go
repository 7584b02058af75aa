package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCompanyBalanceIsNotConstructed is returned when a CompanyBalance was
	// not created through its factory methods.
	ErrCompanyBalanceIsNotConstructed = errors.New(
		"CompanyBalance must be created via NewCompanyBalance constructor")

	// ErrBalanceInvariantBroken signals that currentBalance drifted from
	// totalDebts - totalCredits. This is a fatal bookkeeping fault, not a
	// recoverable caller error.
	ErrBalanceInvariantBroken = errors.New(
		"currentBalance must equal totalDebts - totalCredits")
)

// CompanyBalance is the running financial position of one company.
//
// The aggregate maintains the invariant
//
//	currentBalance == totalDebts - totalCredits
//
// at all times by exposing only booking methods; the three figures are never
// written independently. A positive currentBalance means the company owes
// the platform.
type CompanyBalance struct {
	companyID         kernel.UUID
	currentBalance    decimal.Decimal
	totalDebts        decimal.Decimal
	totalCredits      decimal.Decimal
	lastPaymentDate   *time.Time
	lastPaymentAmount *decimal.Decimal

	isConstructed bool
}

// NewCompanyBalance creates an empty balance for a company. Balances are
// created lazily on the company's first order or payment.
func NewCompanyBalance(companyID kernel.UUID) (*CompanyBalance, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	return &CompanyBalance{
		companyID:      companyID,
		currentBalance: decimal.Zero,
		totalDebts:     decimal.Zero,
		totalCredits:   decimal.Zero,
		isConstructed:  true,
	}, nil
}

// RestoreCompanyBalance reconstructs a balance from persistence and verifies
// the conservation invariant. A violation here means the stored row was
// corrupted outside this aggregate and is reported as
// ErrBalanceInvariantBroken.
func RestoreCompanyBalance(
	companyID kernel.UUID,
	currentBalance decimal.Decimal,
	totalDebts decimal.Decimal,
	totalCredits decimal.Decimal,
	lastPaymentDate *time.Time,
	lastPaymentAmount *decimal.Decimal,
) (*CompanyBalance, error) {
	b, err := NewCompanyBalance(companyID)
	if err != nil {
		return nil, err
	}

	if !currentBalance.Equal(totalDebts.Sub(totalCredits)) {
		return nil, fmt.Errorf("%w: balance %s, debts %s, credits %s",
			ErrBalanceInvariantBroken, currentBalance, totalDebts, totalCredits)
	}

	b.currentBalance = currentBalance
	b.totalDebts = totalDebts
	b.totalCredits = totalCredits
	b.lastPaymentDate = lastPaymentDate
	b.lastPaymentAmount = lastPaymentAmount
	return b, nil
}

// Validate ensures the CompanyBalance was properly constructed.
func (b *CompanyBalance) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrCompanyBalanceIsNotConstructed
	}
	return nil
}

// CompanyID returns the owning company's identifier.
func (b *CompanyBalance) CompanyID() kernel.UUID {
	return b.companyID
}

// CurrentBalance returns what the company currently owes the platform.
func (b *CompanyBalance) CurrentBalance() decimal.Decimal {
	return b.currentBalance
}

// TotalDebts returns the lifetime sum of booked debts.
func (b *CompanyBalance) TotalDebts() decimal.Decimal {
	return b.totalDebts
}

// TotalCredits returns the lifetime sum of received payments.
func (b *CompanyBalance) TotalCredits() decimal.Decimal {
	return b.totalCredits
}

// LastPaymentDate returns when the company last paid, or nil.
func (b *CompanyBalance) LastPaymentDate() *time.Time {
	return b.lastPaymentDate
}

// LastPaymentAmount returns the company's last payment amount, or nil.
func (b *CompanyBalance) LastPaymentAmount() *decimal.Decimal {
	return b.lastPaymentAmount
}

// AddDebt books an order's price against the company at creation time.
func (b *CompanyBalance) AddDebt(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	b.currentBalance = b.currentBalance.Add(amount)
	b.totalDebts = b.totalDebts.Add(amount)
	return nil
}

// ReverseDebt reverses a creation-time booking when the order is cancelled
// or its price rejected. Reversing more than the booked total breaks the
// invariant and is reported as ErrBalanceInvariantBroken.
func (b *CompanyBalance) ReverseDebt(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	if amount.GreaterThan(b.totalDebts) {
		return fmt.Errorf("%w: reversing %s exceeds booked debts %s",
			ErrBalanceInvariantBroken, amount, b.totalDebts)
	}

	b.currentBalance = b.currentBalance.Sub(amount)
	b.totalDebts = b.totalDebts.Sub(amount)
	return nil
}

// ApplyPayment credits a completed payment against the balance and records
// it as the company's most recent payment.
func (b *CompanyBalance) ApplyPayment(amount decimal.Decimal, paidAt time.Time) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	b.currentBalance = b.currentBalance.Sub(amount)
	b.totalCredits = b.totalCredits.Add(amount)
	b.lastPaymentDate = &paidAt
	b.lastPaymentAmount = &amount
	return nil
}
