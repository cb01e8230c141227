// Package notification contains the Notification aggregate.
//
// A Notification is a message addressed to a single user: a producer learning
// about a new order, a consumer learning about a status change, or general
// information. Notifications carry an unread flag the recipient can toggle and
// an optional link to the page the message refers to.
package notification

import (
	"errors"
	"fmt"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New(
	"notification is not constructed: use NewNotification or RestoreNotification")

// Type classifies a notification.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeNewOrder tells a producer a new order was placed with them.
	TypeNewOrder

	// TypeOrderUpdate tells a consumer their order changed status.
	TypeOrderUpdate

	// TypeGeneralInfo is used for messages outside the order flow.
	TypeGeneralInfo
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:     "unknown",
		TypeNewOrder:    "new_order",
		TypeOrderUpdate: "order_update",
		TypeGeneralInfo: "general_info",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeNewOrder:    "new_order",
		TypeOrderUpdate: "order_update",
		TypeGeneralInfo: "general_info",
	}
}

// TypeFromString parses a notification type from its wire representation.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("notificationType",
		fmt.Errorf("%q is not a valid notification type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notificationType",
			fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// String returns the snake_case wire name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Notification is an aggregate root representing a message addressed to one
// user. The recipient may mark it read or unread and delete it; nothing else
// about a notification ever changes.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	message     string
	kind        Type
	isRead      bool
	relatedURL  string

	isConstructed bool
}

// NewNotification creates an unread notification for a recipient.
//
// Parameters:
//   - id: unique identifier for the notification.
//   - recipientID: user the message is addressed to.
//   - message: the text shown to the recipient, required.
//   - kind: the notification classification.
//   - relatedURL: optional link to the page the message refers to.
//
// Returns:
//   - *Notification: the newly created notification.
//   - error: validation error if any input is invalid.
func NewNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	message string,
	kind Type,
	relatedURL string,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := recipientID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipientID", err)
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		message:       message,
		kind:          kind,
		isRead:        false,
		relatedURL:    relatedURL,
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	message string,
	kind Type,
	isRead bool,
	relatedURL string,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := recipientID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipientID", err)
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		message:       message,
		kind:          kind,
		isRead:        isRead,
		relatedURL:    relatedURL,
		isConstructed: true,
	}, nil
}

// Validate checks that the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// RecipientID returns the user the notification is addressed to.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Message returns the text shown to the recipient.
func (n *Notification) Message() string {
	return n.message
}

// Kind returns the notification classification.
func (n *Notification) Kind() Type {
	return n.kind
}

// IsRead reports whether the recipient marked the notification read.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// RelatedURL returns the optional link the message refers to.
// It is empty when the notification has no associated page.
func (n *Notification) RelatedURL() string {
	return n.relatedURL
}

// MarkRead marks the notification as read. Marking an already read
// notification is a no-op.
func (n *Notification) MarkRead() {
	n.isRead = true
}

// MarkUnread marks the notification as unread.
func (n *Notification) MarkUnread() {
	n.isRead = false
}

// IsAddressedTo reports whether the notification belongs to the given user.
// Recipients may only manage their own notifications.
func (n *Notification) IsAddressedTo(userID kernel.UUID) bool {
	return n.recipientID.IsEqual(userID)
}
