package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/account"
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order listing for one actor: consumers see the
// orders they placed, producers see the orders addressed to them.
//
// Example:
//
//	actor, _ := account.NewConsumerActor(userID)
//	query, _ := NewGetOrdersQuery(actor)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query for the given actor.
func NewGetOrdersQuery(actor account.Actor) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns whose orders are being listed.
func (q GetOrdersQuery) Actor() account.Actor {
	return q.actor
}

// GetOrdersQueryResponse represents one order in the listing, including its
// snapshotted item lines.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	ConsumerID      kernel.UUID
	ProducerID      kernel.UUID
	Status          string
	DeliveryAddress string
	TotalYen        decimal.Decimal
	CreatedAt       time.Time
	Items           []GetOrdersQueryItemResponse
}

// GetOrdersQueryItemResponse represents one snapshotted order line.
// ProductID is nil when the product was deleted after the order was placed.
type GetOrdersQueryItemResponse struct {
	ProductID     *kernel.UUID
	Name          string
	PriceYenPerKg decimal.Decimal
	QuantityKg    decimal.Decimal
	TotalYen      decimal.Decimal
}
