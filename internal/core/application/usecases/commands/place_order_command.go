package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderLinesAreRequired     = errors.New("at least one order line is required")
	ErrQuantityIsInvalid         = errors.New("quantity must be greater than 0")
)

// OrderLine is one requested product and quantity within a PlaceOrderCommand.
type OrderLine struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	quantityKg decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOrderLine creates an order line request for a product and quantity.
// The quantity must be strictly positive.
func NewOrderLine(productID kernel.UUID, quantityKg decimal.Decimal) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantityKg(quantityKg),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// QuantityKg returns the requested quantity in kilograms.
func (l OrderLine) QuantityKg() decimal.Decimal {
	return l.quantityKg
}

func (l *OrderLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	l.productID = productID
	return nil
}

func (l *OrderLine) setQuantityKg(quantityKg decimal.Decimal) error {
	if !quantityKg.IsPositive() {
		return ErrQuantityIsInvalid
	}

	l.quantityKg = quantityKg
	return nil
}

// PlaceOrderCommand represents a consumer's request to order rice products.
// All lines must reference products of the same producer; the handler rejects
// mixed-producer orders.
//
// Example:
//
//	line, _ := NewOrderLine(productID, decimal.NewFromFloat(2.5))
//	cmd, err := NewPlaceOrderCommand(orderID, consumerID, []OrderLine{line}, "1-2-3 Naka")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	consumerID      kernel.UUID
	lines           []OrderLine
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the identifiers are valid, at least one line is present,
// every line was properly constructed, and the address is not empty.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	consumerID kernel.UUID,
	lines []OrderLine,
	deliveryAddress string,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setConsumerID(consumerID),
		orderCommand.setLines(lines),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ConsumerID returns the ordering consumer's user identifier.
func (c PlaceOrderCommand) ConsumerID() kernel.UUID {
	return c.consumerID
}

// Lines returns the requested products and quantities.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// DeliveryAddress returns the free-form delivery address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setConsumerID(consumerID kernel.UUID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}

	c.consumerID = consumerID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
