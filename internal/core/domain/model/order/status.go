package order

import (
	"fmt"

	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	PendingConfirmation ──> ConfirmedByProducer ──> OutForDelivery ──> Delivered
//	        │                        │                    │
//	        ├──> CancelledByConsumer │                    │
//	        └────────────────────────┴────────────────────┴──> CancelledByProducer
//
// AwaitingPayment, Paid, and Completed are declared but reserved: no transition
// in the table targets them, pending payment-gateway requirements.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingConfirmation is the initial status when an order is placed.
	// No stock has been deducted yet.
	PendingConfirmation

	// ConfirmedByProducer indicates the producer accepted the order.
	// Stock for every item was deducted when entering this status.
	ConfirmedByProducer

	// AwaitingPayment is reserved for a separate payment step.
	AwaitingPayment

	// Paid is reserved for a separate payment step.
	Paid

	// OutForDelivery indicates the order left the producer.
	OutForDelivery

	// Delivered indicates the order reached the consumer.
	Delivered

	// Completed is reserved for post-delivery consumer confirmation.
	Completed

	// CancelledByConsumer is a terminal state reachable only from
	// PendingConfirmation, so no stock needs restoring.
	CancelledByConsumer

	// CancelledByProducer is a terminal state. Cancelling a confirmed order
	// restores the stock deducted at confirmation.
	CancelledByProducer
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "unknown",
		PendingConfirmation: "pending_confirmation",
		ConfirmedByProducer: "confirmed_by_producer",
		AwaitingPayment:     "awaiting_payment",
		Paid:                "paid",
		OutForDelivery:      "out_for_delivery",
		Delivered:           "delivered",
		Completed:           "completed",
		CancelledByConsumer: "cancelled_by_consumer",
		CancelledByProducer: "cancelled_by_producer",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingConfirmation: "pending_confirmation",
		ConfirmedByProducer: "confirmed_by_producer",
		AwaitingPayment:     "awaiting_payment",
		Paid:                "paid",
		OutForDelivery:      "out_for_delivery",
		Delivered:           "delivered",
		Completed:           "completed",
		CancelledByConsumer: "cancelled_by_consumer",
		CancelledByProducer: "cancelled_by_producer",
	}
}

// getDisplayNames returns human-readable names used in notification messages.
func getDisplayNames() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		PendingConfirmation: "Pending Confirmation",
		ConfirmedByProducer: "Confirmed by Producer",
		AwaitingPayment:     "Awaiting Payment",
		Paid:                "Paid",
		OutForDelivery:      "Out for Delivery",
		Delivered:           "Delivered",
		Completed:           "Completed",
		CancelledByConsumer: "Cancelled by Consumer",
		CancelledByProducer: "Cancelled by Producer",
	}
}

// StatusFromString parses a status from its wire representation,
// e.g. "pending_confirmation". Returns an error for unknown strings.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DisplayName returns the human-readable name of the status, used when
// composing notification messages, e.g. "Confirmed by Producer".
func (s Status) DisplayName() string {
	if str, ok := getDisplayNames()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	for t := range allowedTransitions() {
		if t.from == s {
			return false
		}
	}
	return true
}

// transition is a single (from, to) edge of the order state machine.
type transition struct {
	from Status
	to   Status
}

// allowedTransitions enumerates every legal status transition together with
// the role allowed to request it. Everything absent from this table is
// rejected. Ownership of the order is checked separately by Order.ChangeStatus.
//
// AwaitingPayment, Paid, and Completed deliberately have no entries: they are
// reserved states with no enforced transitions.
func allowedTransitions() map[transition]account.Role {
	return map[transition]account.Role{
		{PendingConfirmation, ConfirmedByProducer}: account.RoleProducer,
		{PendingConfirmation, CancelledByConsumer}: account.RoleConsumer,
		{PendingConfirmation, CancelledByProducer}: account.RoleProducer,
		{ConfirmedByProducer, OutForDelivery}:      account.RoleProducer,
		{ConfirmedByProducer, CancelledByProducer}: account.RoleProducer,
		{OutForDelivery, Delivered}:                account.RoleProducer,
		{OutForDelivery, CancelledByProducer}:      account.RoleProducer,
	}
}

// CanTransition reports whether the given role may move an order from one
// status to another. The check is purely table-driven so that every legal
// transition is enumerable and testable.
func CanTransition(role account.Role, from Status, to Status) bool {
	allowedRole, ok := allowedTransitions()[transition{from, to}]
	return ok && allowedRole == role
}

// StockEffect describes the inventory side effect of a status transition.
type StockEffect int

const (
	// StockEffectNone means the transition only changes the status.
	StockEffectNone StockEffect = iota

	// StockEffectDeduct means every item's quantity must be deducted from its
	// product's stock, all-or-nothing across the order.
	StockEffectDeduct

	// StockEffectRestore means stock deducted at confirmation must be
	// returned, skipping items whose product was deleted.
	StockEffectRestore
)

// StockEffectOf returns the inventory side effect of moving an order from one
// status to another. Only confirmation deducts and only cancellation of a
// confirmed order restores; every other edge is status-only.
func StockEffectOf(from Status, to Status) StockEffect {
	switch {
	case from == PendingConfirmation && to == ConfirmedByProducer:
		return StockEffectDeduct
	case from == ConfirmedByProducer && to == CancelledByProducer:
		return StockEffectRestore
	default:
		return StockEffectNone
	}
}
