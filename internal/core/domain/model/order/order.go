package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New(
		"order is not constructed: use NewOrder or RestoreOrder")

	// ErrPermissionDenied is returned when an actor is not allowed to perform
	// a status change, either because the order does not belong to them or
	// because their role may not request that transition.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidStatusTransition is returned when the requested transition is
	// absent from the state machine for every role.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// InvalidStatusTransitionError describes a transition that no role is
// allowed to perform.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

// Error implements the error interface.
func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot change status from %s to %s",
		e.From, e.To)
}

// Unwrap returns the sentinel error for use with errors.Is.
func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// NewInvalidStatusTransitionError creates an InvalidStatusTransitionError.
func NewInvalidStatusTransitionError(from Status, to Status) error {
	return &InvalidStatusTransitionError{From: from, To: to}
}

// Order is the aggregate root of the ordering domain. It binds a consumer to
// a producer, carries immutable item lines with price and name snapshots, and
// owns the status state machine.
//
// Order enforces its invariants through controlled construction:
// use NewOrder for new orders or RestoreOrder when loading from persistence.
type Order struct {
	id         kernel.UUID
	consumerID kernel.UUID
	producerID kernel.UUID

	items           []Item
	deliveryAddress string
	totalYen        decimal.Decimal
	status          Status

	isConstructed bool
}

// NewOrder creates a new Order in PendingConfirmation with the total computed
// as the sum of the item line totals.
//
// Parameters:
//   - id: unique identifier for the order.
//   - consumerID: identifier of the ordering consumer's user.
//   - producerID: identifier of the producer the order is addressed to.
//   - items: order lines, at least one, all belonging to the same producer.
//   - deliveryAddress: free-form address, required.
//
// Returns:
//   - *Order: the newly created order.
//   - error: validation error if any input is invalid.
func NewOrder(
	id kernel.UUID,
	consumerID kernel.UUID,
	producerID kernel.UUID,
	items []Item,
	deliveryAddress string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := consumerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("consumerID", err)
	}
	if err := producerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("producerID", err)
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}
	if deliveryAddress == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalYen())
	}

	return &Order{
		id:              id,
		consumerID:      consumerID,
		producerID:      producerID,
		items:           items,
		deliveryAddress: deliveryAddress,
		totalYen:        total,
		status:          PendingConfirmation,
		isConstructed:   true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence, trusting the stored
// total and status instead of recomputing them.
func RestoreOrder(
	id kernel.UUID,
	consumerID kernel.UUID,
	producerID kernel.UUID,
	items []Item,
	deliveryAddress string,
	totalYen decimal.Decimal,
	status Status,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := consumerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("consumerID", err)
	}
	if err := producerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("producerID", err)
	}
	if err := status.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	return &Order{
		id:              id,
		consumerID:      consumerID,
		producerID:      producerID,
		items:           items,
		deliveryAddress: deliveryAddress,
		totalYen:        totalYen,
		status:          status,
		isConstructed:   true,
	}, nil
}

// Validate checks that the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	if o == nil || other == nil {
		return false
	}
	return o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ConsumerID returns the user identifier of the ordering consumer.
func (o *Order) ConsumerID() kernel.UUID {
	return o.consumerID
}

// ProducerID returns the identifier of the producer the order belongs to.
func (o *Order) ProducerID() kernel.UUID {
	return o.producerID
}

// Items returns the order lines. The returned slice must not be mutated.
func (o *Order) Items() []Item {
	return o.items
}

// DeliveryAddress returns the delivery address supplied at ordering time.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TotalYen returns the order total in yen.
func (o *Order) TotalYen() decimal.Decimal {
	return o.totalYen
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus transitions the order to the next status on behalf of the
// given actor. The actor must own the order (the consumer who placed it, or
// the producer it is addressed to) and the transition must be allowed for the
// actor's role.
//
// Returns ErrPermissionDenied when the actor does not own the order or their
// role may not request the transition, and ErrInvalidStatusTransition when no
// role at all may perform it. Stock side effects of the transition are not
// applied here; callers consult StockEffectOf and apply them in the same
// transaction as the status change.
func (o *Order) ChangeStatus(actor account.Actor, next Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	switch actor.Role() {
	case account.RoleConsumer:
		if !actor.IsUser(o.consumerID) {
			return ErrPermissionDenied
		}
	case account.RoleProducer:
		if !actor.ActsForProducer(o.producerID) {
			return ErrPermissionDenied
		}
	default:
		return ErrPermissionDenied
	}

	if _, exists := allowedTransitions()[transition{o.status, next}]; !exists {
		return NewInvalidStatusTransitionError(o.status, next)
	}
	if !CanTransition(actor.Role(), o.status, next) {
		return ErrPermissionDenied
	}

	o.status = next
	return nil
}
