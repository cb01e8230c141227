package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/notification"
	"ricemarket/internal/core/domain/model/order"
)

var (
	// ErrProductIsNotAvailable is returned when an order line references a
	// product its producer has withdrawn from sale.
	ErrProductIsNotAvailable = errors.New("product is not available")

	// ErrMixedProducersInOrder is returned when the order lines reference
	// products of more than one producer. An order belongs to exactly one
	// producer.
	ErrMixedProducersInOrder = errors.New("all order lines must belong to the same producer")
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Snapshots product names and prices into the order lines, persists the order
// in pending confirmation, and notifies the producer. Stock is not touched
// until the producer confirms.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, logger)
//	cmd, _ := NewPlaceOrderCommand(orderID, consumerID, lines, address)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// A nil logger falls back to slog.Default().
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) PlaceOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// Loads each requested product, verifies availability and single-producer
// membership, snapshots names and prices into order lines, persists the order
// atomically, and writes a new_order notification to the producer's user.
// A notification write failure is logged and does not abort the order.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	productRepo := uow.ProductRepository()

	var producerID kernel.UUID
	items := make([]order.Item, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID())
		if err != nil {
			return err
		}
		if !p.IsAvailable() {
			return fmt.Errorf("%w: %s", ErrProductIsNotAvailable, p.Name())
		}

		if producerID.Validate() != nil {
			producerID = p.ProducerID()
		} else if !producerID.IsEqual(p.ProducerID()) {
			return ErrMixedProducersInOrder
		}

		item, err := order.NewItem(p.ID(), p.Name(), p.PriceYenPerKg(), line.QuantityKg())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.ConsumerID(), producerID, items, cmd.DeliveryAddress())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	h.notifyProducer(ctx, uow, newOrder)

	return uow.Commit(ctx)
}

// notifyProducer writes a new_order notification addressed to the user behind
// the order's producer profile. Failures are logged, not propagated: the order
// must not be lost because its notification could not be written.
func (h *PlaceOrderCommandHandler) notifyProducer(ctx context.Context, uow UoW, o *order.Order) {
	prod, err := uow.ProducerRepository().Get(ctx, o.ProducerID())
	if err != nil {
		h.logger.WarnContext(ctx, "skipping new order notification",
			"orderID", o.ID().String(), "error", err)
		return
	}

	message := fmt.Sprintf("You have received a new order %s totalling %s yen.",
		o.ID().String(), o.TotalYen().String())
	relatedURL := fmt.Sprintf("/producer/orders/%s", o.ID().String())

	n, err := notification.NewNotification(
		kernel.NewUUID(), prod.UserID(), message, notification.TypeNewOrder, relatedURL)
	if err != nil {
		h.logger.WarnContext(ctx, "skipping new order notification",
			"orderID", o.ID().String(), "error", err)
		return
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		h.logger.WarnContext(ctx, "failed to write new order notification",
			"orderID", o.ID().String(), "error", err)
	}
}
