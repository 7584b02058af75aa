// Package arearepo provides data transfer objects and mapping functions for
// service area persistence. Polygon boundaries are stored as a JSONB vertex
// list; containment tests always run in memory over restored aggregates.
package arearepo

import (
	"encoding/json"

	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/kernel"
	"github.com/hodoxnet/kuryemburada-sub000/internal/core/domain/model/servicearea"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceAreaDTO represents the database structure for persisting service
// areas.
type ServiceAreaDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	City          string `gorm:"size:64"`
	District      string `gorm:"size:64"`
	Boundaries    []byte `gorm:"type:jsonb"`
	BasePrice     decimal.Decimal  `gorm:"type:numeric(12,2)"`
	PricePerKm    decimal.Decimal  `gorm:"type:numeric(12,2)"`
	MaxDistanceKm *decimal.Decimal `gorm:"type:numeric(10,3)"`
	Priority      int
	IsActive      bool `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use
// "service_areas".
func (ServiceAreaDTO) TableName() string {
	return "service_areas"
}

// vertexDTO is the JSON shape of one polygon vertex.
type vertexDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// fromDomain converts a service area aggregate to its database
// representation.
func fromDomain(aggregate *servicearea.ServiceArea) (ServiceAreaDTO, error) {
	vertices := aggregate.Boundaries().Vertices()
	encoded := make([]vertexDTO, 0, len(vertices))
	for _, v := range vertices {
		encoded = append(encoded, vertexDTO{Lat: v.Lat(), Lng: v.Lng()})
	}

	boundaries, err := json.Marshal(encoded)
	if err != nil {
		return ServiceAreaDTO{}, err
	}

	return ServiceAreaDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		City:          aggregate.City(),
		District:      aggregate.District(),
		Boundaries:    boundaries,
		BasePrice:     aggregate.BasePrice(),
		PricePerKm:    aggregate.PricePerKm(),
		MaxDistanceKm: aggregate.MaxDistanceKm(),
		Priority:      aggregate.Priority(),
		IsActive:      aggregate.IsActive(),
	}, nil
}

// toDomain converts a database row back to a service area aggregate.
func toDomain(dto ServiceAreaDTO) (*servicearea.ServiceArea, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var encoded []vertexDTO
	if err := json.Unmarshal(dto.Boundaries, &encoded); err != nil {
		return nil, err
	}

	vertices := make([]kernel.GeoPoint, 0, len(encoded))
	for _, v := range encoded {
		point, pointErr := kernel.NewGeoPoint(v.Lat, v.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		vertices = append(vertices, point)
	}

	boundaries, err := servicearea.NewPolygon(vertices)
	if err != nil {
		return nil, err
	}

	return servicearea.RestoreServiceArea(
		id,
		dto.Name,
		dto.City,
		dto.District,
		boundaries,
		dto.BasePrice,
		dto.PricePerKm,
		dto.MaxDistanceKm,
		dto.Priority,
		dto.IsActive,
	)
}
