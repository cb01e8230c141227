// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting
// notification aggregates.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;index"`
	Message     string
	Type        int
	IsRead      bool
	RelatedURL  string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain aggregate to its database
// representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		Message:     aggregate.Message(),
		Type:        int(aggregate.Kind()),
		IsRead:      aggregate.IsRead(),
		RelatedURL:  aggregate.RelatedURL(),
	}
}

// toDomain converts a database DTO to a notification domain aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, recipientID, dto.Message,
		notification.Type(dto.Type), dto.IsRead, dto.RelatedURL)
}
