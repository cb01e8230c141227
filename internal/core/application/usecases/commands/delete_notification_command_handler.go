package commands

import (
	"context"

	"ricemarket/internal/pkg/errs"
)

// DeleteNotificationCommandHandler handles removing a notification from the
// recipient's inbox. A notification addressed to someone else is reported as
// not found.
type DeleteNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewDeleteNotificationCommandHandler creates a handler for notification deletion.
func NewDeleteNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h *DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd DeleteNotificationCommand) error {
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

	n, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}
	if !n.IsAddressedTo(cmd.RecipientID()) {
		return errs.NewObjectNotFoundError("notification", cmd.NotificationID().String())
	}

	if err = notificationRepo.Delete(ctx, cmd.NotificationID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
