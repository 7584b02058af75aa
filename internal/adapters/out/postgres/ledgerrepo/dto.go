// Package ledgerrepo provides data transfer objects and mapping functions
// for the financial ledger: company balances and daily reconciliation
// buckets. All monetary columns are numeric; balances are never stored as
// floats.
package ledgerrepo

import (
	"time"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyBalanceDTO represents the database structure for a company's
// running balance. One row per company.
type CompanyBalanceDTO struct {
	CompanyID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CurrentBalance    decimal.Decimal  `gorm:"type:numeric(14,2)"`
	TotalDebts        decimal.Decimal  `gorm:"type:numeric(14,2)"`
	TotalCredits      decimal.Decimal  `gorm:"type:numeric(14,2)"`
	LastPaymentDate   *time.Time
	LastPaymentAmount *decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming convention to use
// "company_balances".
func (CompanyBalanceDTO) TableName() string {
	return "company_balances"
}

// DailyReconciliationDTO represents one settlement bucket: one company, one
// calendar day.
type DailyReconciliationDTO struct {
	CompanyID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Day                time.Time       `gorm:"primaryKey"`
	TotalOrders        int
	DeliveredOrders    int
	CancelledOrders    int
	TotalAmount        decimal.Decimal `gorm:"type:numeric(14,2)"`
	CourierCost        decimal.Decimal `gorm:"type:numeric(14,2)"`
	PlatformCommission decimal.Decimal `gorm:"type:numeric(14,2)"`
	NetAmount          decimal.Decimal `gorm:"type:numeric(14,2)"`
	PaidAmount         decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status             string          `gorm:"size:16;index"`
}

// TableName overrides GORM's default naming convention to use
// "daily_reconciliations".
func (DailyReconciliationDTO) TableName() string {
	return "daily_reconciliations"
}

// balanceFromDomain converts a balance aggregate to its database
// representation.
func balanceFromDomain(balance *ledger.CompanyBalance) CompanyBalanceDTO {
	return CompanyBalanceDTO{
		CompanyID:         balance.CompanyID().Bytes(),
		CurrentBalance:    balance.CurrentBalance(),
		TotalDebts:        balance.TotalDebts(),
		TotalCredits:      balance.TotalCredits(),
		LastPaymentDate:   balance.LastPaymentDate(),
		LastPaymentAmount: balance.LastPaymentAmount(),
	}
}

// balanceToDomain converts a database row back to a balance aggregate. The
// currentBalance == totalDebts - totalCredits invariant is re-checked on
// restore.
func balanceToDomain(dto CompanyBalanceDTO) (*ledger.CompanyBalance, error) {
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	return ledger.RestoreCompanyBalance(
		companyID,
		dto.CurrentBalance,
		dto.TotalDebts,
		dto.TotalCredits,
		dto.LastPaymentDate,
		dto.LastPaymentAmount,
	)
}

// reconciliationFromDomain converts a bucket aggregate to its database
// representation.
func reconciliationFromDomain(rec *ledger.DailyReconciliation) DailyReconciliationDTO {
	return DailyReconciliationDTO{
		CompanyID:          rec.CompanyID().Bytes(),
		Day:                rec.Day(),
		TotalOrders:        rec.TotalOrders(),
		DeliveredOrders:    rec.DeliveredOrders(),
		CancelledOrders:    rec.CancelledOrders(),
		TotalAmount:        rec.TotalAmount(),
		CourierCost:        rec.CourierCost(),
		PlatformCommission: rec.PlatformCommission(),
		NetAmount:          rec.NetAmount(),
		PaidAmount:         rec.PaidAmount(),
		Status:             rec.Status().String(),
	}
}

// reconciliationToDomain converts a database row back to a bucket
// aggregate.
func reconciliationToDomain(dto DailyReconciliationDTO) (*ledger.DailyReconciliation, error) {
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	status, err := ledger.ParseReconciliationStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreDailyReconciliation(
		companyID,
		dto.Day,
		dto.TotalOrders,
		dto.DeliveredOrders,
		dto.CancelledOrders,
		dto.TotalAmount,
		dto.CourierCost,
		dto.PlatformCommission,
		dto.NetAmount,
		dto.PaidAmount,
		status,
	)
}
