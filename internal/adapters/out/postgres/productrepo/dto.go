// Package productrepo provides data transfer objects and mapping functions for
// product persistence. It implements the repository pattern for the product
// aggregate, handling the conversion between domain entities and database rows.
package productrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProducerID    uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Description   string
	PriceYenPerKg decimal.Decimal `gorm:"type:decimal(10,2)"`
	StockKg       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Available     bool            `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		ProducerID:    aggregate.ProducerID().Bytes(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		PriceYenPerKg: aggregate.PriceYenPerKg(),
		StockKg:       aggregate.StockKg(),
		Available:     aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	producerID, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, producerID, dto.Name, dto.Description,
		dto.PriceYenPerKg, dto.StockKg, dto.Available)
}
