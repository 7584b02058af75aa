// Package companyrepo provides data transfer objects and mapping functions
// for company persistence.
package companyrepo

import (
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/company"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CompanyDTO represents the database structure for persisting company
// aggregates.
type CompanyDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string `gorm:"size:32"`
	Status int
}

// TableName overrides GORM's default naming convention to use "companies".
func (CompanyDTO) TableName() string {
	return "companies"
}

// fromDomain converts a company aggregate to its database representation.
func fromDomain(aggregate *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database row back to a company aggregate.
func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(id, dto.Name, dto.Phone, company.Status(dto.Status))
}
