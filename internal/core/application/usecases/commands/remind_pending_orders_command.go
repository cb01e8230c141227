package commands

import (
	"errors"
	"time"

	"ricemarket/internal/pkg/guard"
)

var (
	ErrRemindPendingOrdersCommandIsNotConstructed = errors.New(
		"RemindPendingOrdersCommand must be created via NewRemindPendingOrdersCommand constructor",
	)
	ErrReminderAgeIsInvalid = errors.New("reminder age must be greater than 0")
)

// RemindPendingOrdersCommand represents a system request to remind producers
// about orders that have sat in pending confirmation for too long.
type RemindPendingOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindPendingOrdersCommand creates a reminder command for orders older
// than the given age.
func NewRemindPendingOrdersCommand(olderThan time.Duration) (RemindPendingOrdersCommand, error) {
	remindCommand := RemindPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := remindCommand.setOlderThan(olderThan); err != nil {
		return RemindPendingOrdersCommand{}, err
	}

	return remindCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindPendingOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age of pending orders to remind about.
func (c RemindPendingOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *RemindPendingOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrReminderAgeIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
