// Package producerrepo provides data transfer objects and mapping functions
// for producer profile persistence. The delivery zone columns are nullable:
// a producer without a configured zone delivers nowhere.
package producerrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/producer"
)

// ProducerDTO represents the database structure for persisting producer profiles.
type ProducerDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BusinessName     string
	BaseLatitude     *float64
	BaseLongitude    *float64
	DeliveryRadiusKm decimal.NullDecimal `gorm:"type:decimal(10,2)"`
}

// TableName specifies the database table name for producer entities.
func (ProducerDTO) TableName() string {
	return "producers"
}

// fromDomain converts a producer domain aggregate to its database representation.
func fromDomain(aggregate *producer.Producer) ProducerDTO {
	dto := ProducerDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		BusinessName: aggregate.BusinessName(),
	}

	if base := aggregate.BaseLocation(); base != nil {
		lat := base.Latitude()
		lon := base.Longitude()
		dto.BaseLatitude = &lat
		dto.BaseLongitude = &lon
	}
	if radius := aggregate.DeliveryRadiusKm(); radius != nil {
		dto.DeliveryRadiusKm = decimal.NullDecimal{Decimal: *radius, Valid: true}
	}

	return dto
}

// toDomain converts a database DTO to a producer domain aggregate.
func toDomain(dto ProducerDTO) (*producer.Producer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var base *kernel.GeoPoint
	if dto.BaseLatitude != nil && dto.BaseLongitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.BaseLatitude, *dto.BaseLongitude)
		if pointErr != nil {
			return nil, pointErr
		}
		base = &point
	}

	var radius *decimal.Decimal
	if dto.DeliveryRadiusKm.Valid {
		radius = &dto.DeliveryRadiusKm.Decimal
	}

	return producer.RestoreProducer(id, userID, dto.BusinessName, base, radius)
}
