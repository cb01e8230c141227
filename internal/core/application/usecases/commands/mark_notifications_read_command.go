package commands

import (
	"errors"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand represents a recipient's request to mark
// notifications as read. With no identifiers the whole inbox is marked read;
// with identifiers only those notifications are touched. Notifications not
// addressed to the recipient are treated as not found.
type MarkNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	recipientID     kernel.UUID
	notificationIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationsReadCommand creates a command to mark notifications read.
// An empty or nil notificationIDs slice means the entire inbox.
func NewMarkNotificationsReadCommand(
	recipientID kernel.UUID,
	notificationIDs []kernel.UUID,
) (MarkNotificationsReadCommand, error) {
	readCommand := MarkNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		readCommand.setRecipientID(recipientID),
		readCommand.setNotificationIDs(notificationIDs),
	); err != nil {
		return MarkNotificationsReadCommand{}, err
	}

	return readCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

// RecipientID returns the user whose inbox is being updated.
func (c MarkNotificationsReadCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// NotificationIDs returns the targeted notifications; empty means all.
func (c MarkNotificationsReadCommand) NotificationIDs() []kernel.UUID {
	return c.notificationIDs
}

func (c *MarkNotificationsReadCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *MarkNotificationsReadCommand) setNotificationIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.notificationIDs = ids
	return nil
}
