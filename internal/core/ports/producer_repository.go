package ports

import (
	"context"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/producer"
)

// ProducerRepository defines the persistence contract for producer aggregates.
type ProducerRepository interface {
	// Add persists a new producer aggregate to storage.
	Add(ctx context.Context, aggregate *producer.Producer) error

	// Update persists changes to an existing producer aggregate.
	Update(ctx context.Context, aggregate *producer.Producer) error

	// Get retrieves a producer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*producer.Producer, error)

	// GetByUser retrieves the producer profile belonging to a user.
	// Returns errs.ErrObjectNotFound when the user has no producer profile.
	GetByUser(ctx context.Context, userID kernel.UUID) (*producer.Producer, error)

	// GetByIDs retrieves the producers for a set of identifiers, keyed by ID.
	// Identifiers with no matching producer are absent from the result.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*producer.Producer, error)
}
