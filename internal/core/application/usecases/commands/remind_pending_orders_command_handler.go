package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"
	"ricemarket/internal/core/domain/model/order"
)

// RemindPendingOrdersCommandHandler notifies producers about orders that have
// been awaiting confirmation for longer than the command's age threshold.
// The reminders are general_info notifications generated by the system, so a
// failure on one order is logged and the remaining orders are still processed.
type RemindPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewRemindPendingOrdersCommandHandler creates a handler for pending order reminders.
// A nil logger falls back to slog.Default().
func NewRemindPendingOrdersCommandHandler(
	uowFactory UoWFactory,
	logger *slog.Logger,
) RemindPendingOrdersCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return RemindPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the reminder command. Collects all pending orders older
// than the threshold and writes one reminder notification per order to the
// user behind its producer profile.
func (h *RemindPendingOrdersCommandHandler) Handle(ctx context.Context, cmd RemindPendingOrdersCommand) error {
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

	cutoff := time.Now().Add(-cmd.OlderThan())
	staleOrders, err := uow.OrderRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		if err = h.remind(ctx, uow, staleOrder); err != nil {
			h.logger.WarnContext(ctx, "failed to write pending order reminder",
				"orderID", staleOrder.ID().String(), "error", err)
		}
	}

	return uow.Commit(ctx)
}

func (h *RemindPendingOrdersCommandHandler) remind(ctx context.Context, uow UoW, o *order.Order) error {
	prod, err := uow.ProducerRepository().Get(ctx, o.ProducerID())
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Order %s is still awaiting your confirmation.", o.ID().String())
	relatedURL := fmt.Sprintf("/producer/orders/%s", o.ID().String())

	n, err := notification.NewNotification(
		kernel.NewUUID(), prod.UserID(), message, notification.TypeGeneralInfo, relatedURL)
	if err != nil {
		return err
	}

	return uow.NotificationRepository().Add(ctx, n)
}
