package commands

import (
	"context"

	"ricemarket/internal/pkg/errs"
)

// MarkNotificationsReadCommandHandler handles marking inbox notifications read.
// Recipients can only affect their own notifications: a notification addressed
// to someone else is reported as not found, never revealed.
type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationsReadCommandHandler creates a handler for marking
// notifications read.
func NewMarkNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-read command. With no targeted identifiers the
// whole inbox is marked read in one statement; otherwise each targeted
// notification is loaded, checked for ownership, and updated.
func (h *MarkNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationsReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()

	if len(cmd.NotificationIDs()) == 0 {
		if _, err := notificationRepo.MarkAllRead(ctx, cmd.RecipientID()); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	for _, id := range cmd.NotificationIDs() {
		n, err := notificationRepo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !n.IsAddressedTo(cmd.RecipientID()) {
			return errs.NewObjectNotFoundError("notification", id.String())
		}

		n.MarkRead()
		if err = notificationRepo.Update(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
