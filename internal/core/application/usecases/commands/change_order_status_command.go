package commands

import (
	"errors"

	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/order"
	"ricemarket/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status on behalf of a specific actor. The actor is carried explicitly so
// the domain can decide authorization; the handler never infers it.
//
// Example:
//
//	actor, _ := account.NewProducerActor(userID, producerID)
//	cmd, err := NewChangeOrderStatusCommand(orderID, actor, order.ConfirmedByProducer)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   account.Actor
	next    order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates the order identifier, the actor and the target status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actor account.Actor,
	next order.Status,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setActor(actor),
		statusCommand.setNext(next),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who is requesting the change.
func (c ChangeOrderStatusCommand) Actor() account.Actor {
	return c.actor
}

// Next returns the requested target status.
func (c ChangeOrderStatusCommand) Next() order.Status {
	return c.next
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeOrderStatusCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}
