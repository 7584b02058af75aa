// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler names the narrowest composite it needs, so tests only have to
// fake the repositories the command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CompanyRepoFactory provides access to the company repository within a transaction.
	CompanyRepoFactory interface {
		CompanyRepository() ports.CompanyRepository
	}

	// ServiceAreaRepoFactory provides access to the service area repository within a transaction.
	ServiceAreaRepoFactory interface {
		ServiceAreaRepository() ports.ServiceAreaRepository
	}

	// PricingRuleRepoFactory provides access to the pricing rule repository within a transaction.
	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	// LedgerRepoFactory provides access to the balance and reconciliation
	// repositories within a transaction.
	LedgerRepoFactory interface {
		CompanyBalanceRepository() ports.CompanyBalanceRepository
		DailyReconciliationRepository() ports.DailyReconciliationRepository
	}

	// CreateOrderUoW manages the full order-creation transaction: company
	// check, zone and rule lookup, courier pool read and ledger booking.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		CompanyRepoFactory
		ServiceAreaRepoFactory
		PricingRuleRepoFactory
		LedgerRepoFactory
	}

	// CreateOrderUoWFactory creates CreateOrderUoW instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderCourierUoW manages transactions touching an order and its courier.
	OrderCourierUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// OrderCourierUoWFactory creates OrderCourierUoW instances.
	OrderCourierUoWFactory interface {
		Create() OrderCourierUoW
	}

	// OrderLedgerUoW manages transactions touching an order, its courier and
	// the ledger.
	OrderLedgerUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		LedgerRepoFactory
	}

	// OrderLedgerUoWFactory creates OrderLedgerUoW instances.
	OrderLedgerUoWFactory interface {
		Create() OrderLedgerUoW
	}

	// PaymentUoW manages payment transactions over the ledger only.
	PaymentUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// PaymentUoWFactory creates PaymentUoW instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
