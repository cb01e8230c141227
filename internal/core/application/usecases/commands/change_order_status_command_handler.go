package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"
	"ricemarket/internal/core/domain/model/order"
	"ricemarket/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles the business logic for order status
// transitions, including the stock side effects of confirmation and
// cancellation.
//
// Concurrency: the order row is locked for the duration of the transaction,
// so concurrent status changes on the same order serialize. Stock adjustments
// are guarded compare-and-adjust updates, so confirmation is all-or-nothing:
// if any item's stock is insufficient, the whole transition rolls back.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, actor, order.ConfirmedByProducer)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, product.ErrInsufficientStock) {
//	    // One of the items can no longer be fulfilled
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// A nil logger falls back to slog.Default().
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the status change command.
// Locks the order row, applies the transition through the domain (which
// enforces ownership and the transition table), applies the transition's
// stock effect, persists the order, and writes an order_update notification
// to the consumer. A notification write failure is logged and does not abort
// the transition.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := o.Status()
	if err = o.ChangeStatus(cmd.Actor(), cmd.Next()); err != nil {
		return err
	}

	if err = h.applyStockEffect(ctx, uow, o, previous); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	h.notifyConsumer(ctx, uow, o)

	return uow.Commit(ctx)
}

// applyStockEffect applies the inventory consequence of the transition that
// just happened on the aggregate.
//
// Confirmation deducts every item's quantity and fails the whole transition if
// any product is missing or short on stock. Cancelling a confirmed order
// restores quantities, skipping items whose product was deleted since.
func (h *ChangeOrderStatusCommandHandler) applyStockEffect(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	previous order.Status,
) error {
	productRepo := uow.ProductRepository()

	switch order.StockEffectOf(previous, o.Status()) {
	case order.StockEffectDeduct:
		for _, item := range o.Items() {
			productID := item.ProductID()
			if productID == nil {
				return errs.NewObjectNotFoundError("product", item.NameSnapshot())
			}
			if err := productRepo.AdjustStock(ctx, *productID, item.QuantityKg().Neg()); err != nil {
				return fmt.Errorf("deduct stock for %s: %w", item.NameSnapshot(), err)
			}
		}

	case order.StockEffectRestore:
		for _, item := range o.Items() {
			productID := item.ProductID()
			if productID == nil {
				continue
			}
			err := productRepo.AdjustStock(ctx, *productID, item.QuantityKg())
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("restore stock for %s: %w", item.NameSnapshot(), err)
			}
		}

	case order.StockEffectNone:
	}

	return nil
}

// notifyConsumer writes an order_update notification to the consumer who
// placed the order. Failures are logged, not propagated.
func (h *ChangeOrderStatusCommandHandler) notifyConsumer(ctx context.Context, uow UoW, o *order.Order) {
	message := fmt.Sprintf("Your order %s status has been updated to: %s.",
		o.ID().String(), o.Status().DisplayName())
	relatedURL := fmt.Sprintf("/consumer/orders/%s", o.ID().String())

	n, err := notification.NewNotification(
		kernel.NewUUID(), o.ConsumerID(), message, notification.TypeOrderUpdate, relatedURL)
	if err != nil {
		h.logger.WarnContext(ctx, "skipping order update notification",
			"orderID", o.ID().String(), "error", err)
		return
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		h.logger.WarnContext(ctx, "failed to write order update notification",
			"orderID", o.ID().String(), "error", err)
	}
}
