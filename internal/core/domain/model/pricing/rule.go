// Package pricing contains the pricing-rule aggregate consulted by the
// pricing engine when a service area carries no rates of its own, or for
// the global minimum-price clamp.
package pricing

import (
	"errors"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrRuleIsNotConstructed is returned when a Rule instance was not created
// through the NewRule factory method.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

// Rule represents a pricing rule. A rule is either bound to one service area
// (zone-specific) or global (serviceAreaID == nil). At most one active global
// rule is consulted when no zone-specific pricing applies.
//
// Rates are a closed, typed set of parameters rather than an opaque
// parameters blob: base price, per-kilometer rate, and minimum price.
type Rule struct {
	id            kernel.UUID
	serviceAreaID *kernel.UUID
	basePrice     decimal.Decimal
	pricePerKm    decimal.Decimal
	minimumPrice  decimal.Decimal
	isActive      bool

	isConstructed bool
}

// NewRule creates a new active pricing rule.
// A nil serviceAreaID makes the rule global. Rates must be non-negative.
func NewRule(
	id kernel.UUID,
	serviceAreaID *kernel.UUID,
	basePrice decimal.Decimal,
	pricePerKm decimal.Decimal,
	minimumPrice decimal.Decimal,
) (*Rule, error) {
	rule := &Rule{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		rule.setID(id),
		rule.setServiceAreaID(serviceAreaID),
		rule.setRates(basePrice, pricePerKm, minimumPrice),
	); err != nil {
		return nil, err
	}

	return rule, nil
}

// RestoreRule reconstructs a Rule from persistence, including its activation
// state. Used only by repository implementations.
func RestoreRule(
	id kernel.UUID,
	serviceAreaID *kernel.UUID,
	basePrice decimal.Decimal,
	pricePerKm decimal.Decimal,
	minimumPrice decimal.Decimal,
	isActive bool,
) (*Rule, error) {
	rule, err := NewRule(id, serviceAreaID, basePrice, pricePerKm, minimumPrice)
	if err != nil {
		return nil, err
	}

	rule.isActive = isActive
	return rule, nil
}

// Validate ensures the Rule was properly constructed.
func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// ServiceAreaID returns the bound service area's id, or nil for global rules.
func (r *Rule) ServiceAreaID() *kernel.UUID {
	return r.serviceAreaID
}

// IsGlobal reports whether the rule applies platform-wide.
func (r *Rule) IsGlobal() bool {
	return r.serviceAreaID == nil
}

// BasePrice returns the rule's base delivery price.
func (r *Rule) BasePrice() decimal.Decimal {
	return r.basePrice
}

// PricePerKm returns the rule's per-kilometer rate.
func (r *Rule) PricePerKm() decimal.Decimal {
	return r.pricePerKm
}

// MinimumPrice returns the floor applied after all multipliers.
func (r *Rule) MinimumPrice() decimal.Decimal {
	return r.minimumPrice
}

// IsActive reports whether the rule is consulted by the pricing engine.
func (r *Rule) IsActive() bool {
	return r.isActive
}

// Deactivate removes the rule from pricing without deleting it.
func (r *Rule) Deactivate() {
	r.isActive = false
}

// Activate returns the rule to pricing.
func (r *Rule) Activate() {
	r.isActive = true
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setServiceAreaID(serviceAreaID *kernel.UUID) error {
	if serviceAreaID != nil {
		if err := serviceAreaID.Validate(); err != nil {
			return err
		}
	}
	r.serviceAreaID = serviceAreaID
	return nil
}

func (r *Rule) setRates(basePrice, pricePerKm, minimumPrice decimal.Decimal) error {
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidError("basePrice")
	}
	if pricePerKm.IsNegative() {
		return errs.NewValueIsInvalidError("pricePerKm")
	}
	if minimumPrice.IsNegative() {
		return errs.NewValueIsInvalidError("minimumPrice")
	}
	r.basePrice = basePrice
	r.pricePerKm = pricePerKm
	r.minimumPrice = minimumPrice
	return nil
}
