// Package ports defines repository interfaces for the rice marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllAvailable retrieves every product currently marked available.
	// Used for the consumer-facing product listing.
	GetAllAvailable(ctx context.Context) ([]*product.Product, error)

	// GetAllByProducer retrieves every product of one producer, available or not.
	GetAllByProducer(ctx context.Context, producerID kernel.UUID) ([]*product.Product, error)

	// AdjustStock atomically applies a signed stock delta to a product.
	// A negative delta deducts, a positive delta restores. The adjustment is
	// guarded in the database so stock can never go below zero.
	//
	// Returns errs.ErrObjectNotFound when the product does not exist and
	// product.ErrInsufficientStock when the deduction would overdraw stock.
	AdjustStock(ctx context.Context, id kernel.UUID, deltaKg decimal.Decimal) error
}
