package commands

import (
	"errors"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

// DeleteNotificationCommand represents a recipient's request to remove one
// notification from their inbox.
type DeleteNotificationCommand struct { //nolint:recvcheck //using for validation
	recipientID    kernel.UUID
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand creates a command to delete a notification.
func NewDeleteNotificationCommand(
	recipientID kernel.UUID,
	notificationID kernel.UUID,
) (DeleteNotificationCommand, error) {
	deleteCommand := DeleteNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setRecipientID(recipientID),
		deleteCommand.setNotificationID(notificationID),
	); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

// RecipientID returns the user requesting the deletion.
func (c DeleteNotificationCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// NotificationID returns the notification to delete.
func (c DeleteNotificationCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c *DeleteNotificationCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *DeleteNotificationCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}

	c.notificationID = notificationID
	return nil
}
