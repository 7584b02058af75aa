package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCompanyBalanceQueryHandler reads a single balance row from the
// database.
type GetCompanyBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyBalanceQueryHandler creates a handler for balance queries.
func NewGetCompanyBalanceQueryHandler(db *gorm.DB) GetCompanyBalanceQueryHandler {
	return GetCompanyBalanceQueryHandler{db: db}
}

// Handle executes the query. A company that never had an order has no
// balance row and yields ErrObjectNotFound.
func (h GetCompanyBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyBalanceQuery,
) (GetCompanyBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompanyBalanceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			current_balance,
			total_debts,
			total_credits,
			last_payment_date,
			last_payment_amount
		FROM company_balances
		WHERE company_id = ?
	`, query.CompanyID().String()).Row()

	var (
		currentBalance, totalDebts, totalCredits decimal.Decimal
		lastPaymentDate                          *time.Time
		lastPaymentAmount                        *decimal.Decimal
	)

	err := row.Scan(
		&currentBalance,
		&totalDebts,
		&totalCredits,
		&lastPaymentDate,
		&lastPaymentAmount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCompanyBalanceQueryResponse{},
			errs.NewObjectNotFoundError("companyBalance", query.CompanyID())
	}
	if err != nil {
		return GetCompanyBalanceQueryResponse{}, err
	}

	return GetCompanyBalanceQueryResponse{
		CompanyID:         query.CompanyID(),
		CurrentBalance:    currentBalance,
		TotalDebts:        totalDebts,
		TotalCredits:      totalCredits,
		LastPaymentDate:   lastPaymentDate,
		LastPaymentAmount: lastPaymentAmount,
	}, nil
}
