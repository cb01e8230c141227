package ports

import (
	"context"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllForRecipient retrieves all notifications addressed to a user,
	// newest first.
	GetAllForRecipient(ctx context.Context, recipientID kernel.UUID) ([]*notification.Notification, error)

	// MarkAllRead marks every notification of a recipient as read.
	// Returns the number of notifications that changed state.
	MarkAllRead(ctx context.Context, recipientID kernel.UUID) (int64, error)

	// Delete removes a notification from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
