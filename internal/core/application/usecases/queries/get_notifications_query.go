package queries

import (
	"errors"
	"time"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a user's notification inbox, optionally
// narrowed to unread notifications.
type GetNotificationsQuery struct {
	recipientID kernel.UUID
	unreadOnly  bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates an inbox listing query for the recipient.
func NewGetNotificationsQuery(recipientID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := recipientID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		recipientID: recipientID,
		unreadOnly:  unreadOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// RecipientID returns whose inbox is being listed.
func (q GetNotificationsQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

// UnreadOnly reports whether read notifications are excluded.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// GetNotificationsQueryResponse represents one inbox notification.
type GetNotificationsQueryResponse struct {
	ID         kernel.UUID
	Message    string
	Type       string
	IsRead     bool
	RelatedURL string
	CreatedAt  time.Time
}
