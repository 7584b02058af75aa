// Package pricingrepo provides data transfer objects and mapping functions
// for pricing rule persistence.
package pricingrepo

import (
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleDTO represents the database structure for persisting pricing rules.
// A NULL service_area_id marks the global rule.
type RuleDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceAreaID *uuid.UUID      `gorm:"type:uuid;index"`
	BasePrice     decimal.Decimal `gorm:"type:numeric(12,2)"`
	PricePerKm    decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinimumPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive      bool            `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use
// "pricing_rules".
func (RuleDTO) TableName() string {
	return "pricing_rules"
}

// fromDomain converts a pricing rule to its database representation.
func fromDomain(aggregate *pricing.Rule) RuleDTO {
	var serviceAreaID *uuid.UUID
	if id := aggregate.ServiceAreaID(); id != nil {
		raw := id.Bytes()
		serviceAreaID = &raw
	}

	return RuleDTO{
		ID:            aggregate.ID().Bytes(),
		ServiceAreaID: serviceAreaID,
		BasePrice:     aggregate.BasePrice(),
		PricePerKm:    aggregate.PricePerKm(),
		MinimumPrice:  aggregate.MinimumPrice(),
		IsActive:      aggregate.IsActive(),
	}
}

// toDomain converts a database row back to a pricing rule.
func toDomain(dto RuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var serviceAreaID *kernel.UUID
	if dto.ServiceAreaID != nil {
		aID, areaErr := kernel.UUIDFromBytes((*dto.ServiceAreaID)[:])
		if areaErr != nil {
			return nil, areaErr
		}
		serviceAreaID = &aID
	}

	return pricing.RestoreRule(
		id,
		serviceAreaID,
		dto.BasePrice,
		dto.PricePerKm,
		dto.MinimumPrice,
		dto.IsActive,
	)
}
