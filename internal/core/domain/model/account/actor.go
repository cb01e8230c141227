package account

import (
	"errors"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/guard"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not created
	// through one of the constructor functions.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewConsumerActor or NewProducerActor")

	// ErrProducerProfileRequired is returned when constructing a producer actor
	// without a producer profile reference.
	ErrProducerProfileRequired = errors.New("producer actor requires a producer profile id")
)

// Actor is the authenticated identity performing a lifecycle operation.
// It carries the user's id, role, and - for producers - the id of their
// producer profile. Actor is a value object: immutable once constructed.
//
// Example:
//
//	actor, err := account.NewProducerActor(userID, producerProfileID)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd) // cmd carries the actor
type Actor struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	role       Role
	producerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewConsumerActor creates an actor with the consumer role.
// Returns an error if the user id is invalid.
func NewConsumerActor(userID kernel.UUID) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		userID: userID,
		role:   RoleConsumer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewProducerActor creates an actor with the producer role.
// The producer profile id identifies which producer the user acts for.
// Returns an error if either id is invalid.
func NewProducerActor(userID kernel.UUID, producerID kernel.UUID) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := producerID.Validate(); err != nil {
		return Actor{}, ErrProducerProfileRequired
	}

	return Actor{
		userID:     userID,
		role:       RoleProducer,
		producerID: &producerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns the authenticated user's id.
func (a Actor) UserID() kernel.UUID {
	return a.userID
}

// Role returns the actor's marketplace role.
func (a Actor) Role() Role {
	return a.role
}

// ProducerID returns the producer profile id the actor acts for.
// Returns nil for consumer actors.
func (a Actor) ProducerID() *kernel.UUID {
	return a.producerID
}

// ActsForProducer reports whether the actor is the producer identified by id.
func (a Actor) ActsForProducer(id kernel.UUID) bool {
	return a.role == RoleProducer && a.producerID != nil && a.producerID.IsEqual(id)
}

// IsUser reports whether the actor is the user identified by id.
func (a Actor) IsUser(id kernel.UUID) bool {
	return a.userID.IsEqual(id)
}
