package queries

import (
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDailyReconciliationsQueryIsNotConstructed = errors.New(
	"GetDailyReconciliationsQuery must be created via NewGetDailyReconciliationsQuery constructor",
)

// GetDailyReconciliationsQuery retrieves a company's daily settlement
// buckets, newest day first.
type GetDailyReconciliationsQuery struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDailyReconciliationsQuery creates a reconciliation listing query for
// the given company.
func NewGetDailyReconciliationsQuery(companyID kernel.UUID) (GetDailyReconciliationsQuery, error) {
	query := GetDailyReconciliationsQuery{guard: guard.NewConstructorGuard()}

	if err := query.setCompanyID(companyID); err != nil {
		return GetDailyReconciliationsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyReconciliationsQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyReconciliationsQueryIsNotConstructed)
}

// CompanyID returns the company's identifier.
func (q GetDailyReconciliationsQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q *GetDailyReconciliationsQuery) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	q.companyID = companyID
	return nil
}

// GetDailyReconciliationsQueryResponse mirrors one settlement bucket.
// Status carries the stored value: PENDING, PARTIALLY_PAID, or PAID.
type GetDailyReconciliationsQueryResponse struct {
	Day                time.Time
	TotalOrders        int
	DeliveredOrders    int
	CancelledOrders    int
	TotalAmount        decimal.Decimal
	CourierCost        decimal.Decimal
	PlatformCommission decimal.Decimal
	NetAmount          decimal.Decimal
	PaidAmount         decimal.Decimal
	Status             string
}
