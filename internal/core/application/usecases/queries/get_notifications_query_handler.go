package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"
)

// GetNotificationsQueryHandler reads a recipient's notification inbox from
// the database, newest first.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for inbox queries.
// Requires a GORM database connection for query execution.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the inbox query, newest notifications first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			message,
			type,
			is_read,
			related_url,
			created_at
		FROM notifications
		WHERE recipient_id = ?
	`
	if query.UnreadOnly() {
		sqlText += " AND is_read = FALSE"
	}
	sqlText += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, query.RecipientID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]GetNotificationsQueryResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			message    string
			kind       int
			isRead     bool
			relatedURL string
			createdAt  time.Time
		)

		if err = rows.Scan(&id, &message, &kind, &isRead, &relatedURL, &createdAt); err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		notifications = append(notifications, GetNotificationsQueryResponse{
			ID:         notificationID,
			Message:    message,
			Type:       notification.Type(kind).String(),
			IsRead:     isRead,
			RelatedURL: relatedURL,
			CreatedAt:  createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
