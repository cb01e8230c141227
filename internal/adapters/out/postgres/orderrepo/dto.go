// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsumerID      uuid.UUID `gorm:"type:uuid;index"`
	ProducerID      uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	TotalYen        decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status          int             `gorm:"index"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single line of an order as stored in the database.
type OrderItemDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID  `gorm:"type:uuid;index"`
	ProductID             *uuid.UUID `gorm:"type:uuid"`
	NameSnapshot          string
	PriceYenPerKgSnapshot decimal.Decimal `gorm:"type:decimal(10,2)"`
	QuantityKg            decimal.Decimal `gorm:"type:decimal(10,2)"`
	TotalYen              decimal.Decimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var productID *uuid.UUID
		if item.ProductID() != nil {
			raw := item.ProductID().Bytes()
			productID = &raw
		}

		items = append(items, OrderItemDTO{
			ID:                    uuid.New(),
			OrderID:               aggregate.ID().Bytes(),
			ProductID:             productID,
			NameSnapshot:          item.NameSnapshot(),
			PriceYenPerKgSnapshot: item.PriceYenPerKgSnapshot(),
			QuantityKg:            item.QuantityKg(),
			TotalYen:              item.TotalYen(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ConsumerID:      aggregate.ConsumerID().Bytes(),
		ProducerID:      aggregate.ProducerID().Bytes(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		TotalYen:        aggregate.TotalYen(),
		Status:          int(aggregate.Status()),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	consumerID, err := kernel.UUIDFromBytes(dto.ConsumerID[:])
	if err != nil {
		return nil, err
	}

	producerID, err := kernel.UUIDFromBytes(dto.ProducerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		var productID *kernel.UUID
		if itemDTO.ProductID != nil {
			restored, restoreErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
			if restoreErr != nil {
				return nil, restoreErr
			}
			productID = &restored
		}

		item, itemErr := order.RestoreItem(productID, itemDTO.NameSnapshot,
			itemDTO.PriceYenPerKgSnapshot, itemDTO.QuantityKg, itemDTO.TotalYen)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, consumerID, producerID, items,
		dto.DeliveryAddress, dto.TotalYen, order.Status(dto.Status))
}
