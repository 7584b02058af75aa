package services

import (
	"context"
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/order"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Ledger is a domain service that keeps company balances and daily
// reconciliation buckets in step with order lifecycle events.
//
// A Ledger is constructed per transaction over the transaction-bound
// repositories, so every booking it makes commits or rolls back together
// with the order change that caused it. Balance rows are read with a row
// lock, which serializes concurrent bookings against the same company.
//
// Balances and buckets are created lazily on a company's first event.
type Ledger struct {
	balances        ports.CompanyBalanceRepository
	reconciliations ports.DailyReconciliationRepository
}

// NewLedger creates a Ledger over transaction-bound repositories.
func NewLedger(
	balances ports.CompanyBalanceRepository,
	reconciliations ports.DailyReconciliationRepository,
) Ledger {
	return Ledger{balances: balances, reconciliations: reconciliations}
}

// OnOrderCreated books a newly created order: the price becomes company
// debt and the order's figures land in the creation day's bucket.
func (l Ledger) OnOrderCreated(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	charge := aggregate.Charge()

	balance, created, err := l.balanceForUpdate(ctx, aggregate.CompanyID())
	if err != nil {
		return err
	}
	if err := balance.AddDebt(charge.Price); err != nil {
		return err
	}
	if err := l.saveBalance(ctx, balance, created); err != nil {
		return err
	}

	bucket, created, err := l.bucketFor(ctx, aggregate.CompanyID(), aggregate.CreatedAt())
	if err != nil {
		return err
	}
	bucket.BookOrder(charge.Price, charge.CourierEarning, charge.Commission)
	return l.saveBucket(ctx, bucket, created)
}

// OnOrderDelivered counts a delivery in the order's creation-day bucket.
// A bucket that no longer exists is tolerated; the nightly rebuild restores
// the counters from the order history.
func (l Ledger) OnOrderDelivered(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	bucket, err := l.reconciliations.Get(
		ctx, aggregate.CompanyID(), ledger.Day(aggregate.CreatedAt()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	bucket.MarkDelivered()
	return l.reconciliations.Update(ctx, bucket)
}

// OnOrderCancelled reverses the creation-time booking. A missing bucket
// means the day has since been reconciled away and there is nothing to
// reverse; the balance debt is still backed out.
func (l Ledger) OnOrderCancelled(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	charge := aggregate.Charge()

	balance, err := l.balances.GetForUpdate(ctx, aggregate.CompanyID())
	if err != nil {
		return err
	}
	if err := balance.ReverseDebt(charge.Price); err != nil {
		return err
	}
	if err := l.balances.Update(ctx, balance); err != nil {
		return err
	}

	bucket, err := l.reconciliations.Get(
		ctx, aggregate.CompanyID(), ledger.Day(aggregate.CreatedAt()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	bucket.ReverseOrder(charge.Price, charge.CourierEarning, charge.Commission)
	return l.reconciliations.Update(ctx, bucket)
}

// OnPaymentCompleted credits a payment against the company balance and
// settles the unpaid reconciliation buckets oldest first until the amount
// runs out. A remainder larger than all outstanding buckets stays on the
// balance as credit.
func (l Ledger) OnPaymentCompleted(
	ctx context.Context,
	companyID kernel.UUID,
	amount decimal.Decimal,
	paidAt time.Time,
) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	balance, created, err := l.balanceForUpdate(ctx, companyID)
	if err != nil {
		return err
	}
	if err := balance.ApplyPayment(amount, paidAt); err != nil {
		return err
	}
	if err := l.saveBalance(ctx, balance, created); err != nil {
		return err
	}

	buckets, err := l.reconciliations.GetAllUnpaidOldestFirst(ctx, companyID)
	if err != nil {
		return err
	}

	remaining := amount
	for _, bucket := range buckets {
		if !remaining.IsPositive() {
			break
		}
		consumed := bucket.ApplyPayment(remaining)
		if consumed.IsZero() {
			continue
		}
		if err := l.reconciliations.Update(ctx, bucket); err != nil {
			return err
		}
		remaining = remaining.Sub(consumed)
	}
	return nil
}

func (l Ledger) balanceForUpdate(
	ctx context.Context,
	companyID kernel.UUID,
) (*ledger.CompanyBalance, bool, error) {
	balance, err := l.balances.GetForUpdate(ctx, companyID)
	if err == nil {
		return balance, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	balance, err = ledger.NewCompanyBalance(companyID)
	if err != nil {
		return nil, false, err
	}
	return balance, true, nil
}

func (l Ledger) bucketFor(
	ctx context.Context,
	companyID kernel.UUID,
	createdAt time.Time,
) (*ledger.DailyReconciliation, bool, error) {
	bucket, err := l.reconciliations.Get(ctx, companyID, ledger.Day(createdAt))
	if err == nil {
		return bucket, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	bucket, err = ledger.NewDailyReconciliation(companyID, createdAt)
	if err != nil {
		return nil, false, err
	}
	return bucket, true, nil
}

func (l Ledger) saveBalance(ctx context.Context, balance *ledger.CompanyBalance, created bool) error {
	if created {
		return l.balances.Add(ctx, balance)
	}
	return l.balances.Update(ctx, balance)
}

func (l Ledger) saveBucket(ctx context.Context, bucket *ledger.DailyReconciliation, created bool) error {
	if created {
		return l.reconciliations.Add(ctx, bucket)
	}
	return l.reconciliations.Update(ctx, bucket)
}
