package ports

import (
	"context"
	"time"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and the parties involved.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration of
	// the surrounding transaction. Concurrent status changes on the same
	// order serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByConsumer retrieves all orders placed by a consumer,
	// newest first.
	GetAllByConsumer(ctx context.Context, consumerID kernel.UUID) ([]*order.Order, error)

	// GetAllByProducer retrieves all orders addressed to a producer,
	// newest first.
	GetAllByProducer(ctx context.Context, producerID kernel.UUID) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves orders still awaiting producer
	// confirmation that were placed before the cutoff. Used by the
	// pending-order reminder job.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
