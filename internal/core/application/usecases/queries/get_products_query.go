// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain repositories and read projections straight
// from the database, returning plain response structs.
package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the available product listing, optionally
// narrowed to one producer and optionally narrowed to products whose producer
// delivers to a consumer location.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(34.07, 134.55)
//	query, _ := NewGetProductsQuery(nil, &point)
//	handler := NewGetProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
type GetProductsQuery struct {
	producerID *kernel.UUID
	near       *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a product listing query. Both filters are
// optional: a nil producerID lists every producer's products, a nil near
// point skips the delivery range filter.
func NewGetProductsQuery(producerID *kernel.UUID, near *kernel.GeoPoint) (GetProductsQuery, error) {
	if producerID != nil {
		if err := producerID.Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}
	if near != nil {
		if err := near.Validate(); err != nil {
			return GetProductsQuery{}, err
		}
	}

	return GetProductsQuery{
		producerID: producerID,
		near:       near,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// ProducerID returns the optional producer filter.
func (q GetProductsQuery) ProducerID() *kernel.UUID {
	return q.producerID
}

// Near returns the optional consumer location for the delivery range filter.
func (q GetProductsQuery) Near() *kernel.GeoPoint {
	return q.near
}

// GetProductsQueryResponse represents one product in the listing.
type GetProductsQueryResponse struct {
	ID            kernel.UUID
	ProducerID    kernel.UUID
	Name          string
	Description   string
	PriceYenPerKg decimal.Decimal
	StockKg       decimal.Decimal
}
