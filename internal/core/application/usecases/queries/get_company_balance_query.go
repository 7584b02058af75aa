package queries

import (
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCompanyBalanceQueryIsNotConstructed = errors.New(
	"GetCompanyBalanceQuery must be created via NewGetCompanyBalanceQuery constructor",
)

// GetCompanyBalanceQuery retrieves a company's running debt position.
type GetCompanyBalanceQuery struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyBalanceQuery creates a balance query for the given company.
func NewGetCompanyBalanceQuery(companyID kernel.UUID) (GetCompanyBalanceQuery, error) {
	query := GetCompanyBalanceQuery{guard: guard.NewConstructorGuard()}

	if err := query.setCompanyID(companyID); err != nil {
		return GetCompanyBalanceQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyBalanceQueryIsNotConstructed)
}

// CompanyID returns the company's identifier.
func (q GetCompanyBalanceQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q *GetCompanyBalanceQuery) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	q.companyID = companyID
	return nil
}

// GetCompanyBalanceQueryResponse mirrors the balance row. CurrentBalance is
// always TotalDebts minus TotalCredits; a negative value means the company
// holds credit.
type GetCompanyBalanceQueryResponse struct {
	CompanyID         kernel.UUID
	CurrentBalance    decimal.Decimal
	TotalDebts        decimal.Decimal
	TotalCredits      decimal.Decimal
	LastPaymentDate   *time.Time
	LastPaymentAmount *decimal.Decimal
}
