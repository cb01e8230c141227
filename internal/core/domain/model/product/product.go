package product

import (
	"errors"
	"fmt"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct or RestoreProduct factory methods.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is the sentinel for stock deductions that would
	// drive the stock quantity negative. Use errors.Is against this value;
	// the concrete InsufficientStockError carries the details.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a stock deduction that could not be applied.
// It names the product so callers can surface which line item failed.
type InsufficientStockError struct {
	ProductName string
	RequestedKg decimal.Decimal
	AvailableKg decimal.Decimal
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// product and quantities.
func NewInsufficientStockError(productName string, requestedKg, availableKg decimal.Decimal) *InsufficientStockError {
	return &InsufficientStockError{
		ProductName: productName,
		RequestedKg: requestedKg,
		AvailableKg: availableKg,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: not enough stock for %s: requested %s kg, available %s kg",
		ErrInsufficientStock, e.ProductName, e.RequestedKg, e.AvailableKg)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product represents a sellable catalog item owned by a producer.
//
// Product follows these invariants:
//   - Must have a valid unique identifier and a valid producer reference
//   - Name cannot be empty
//   - Price per kilogram is non-negative
//   - Stock quantity in kilograms is never negative
//   - Can only be created through NewProduct or RestoreProduct
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// producerID references the producer profile that owns the product
	producerID kernel.UUID

	// name is the display name, e.g. "Niigata Koshihikari"
	name string

	// description is optional free text shown in listings
	description string

	// priceYenPerKg is the current unit price in yen per kilogram
	priceYenPerKg decimal.Decimal

	// stockKg is the available sellable quantity in kilograms
	stockKg decimal.Decimal

	// available marks whether the product can currently be ordered
	available bool

	// isConstructed ensures the product was created via a factory method
	isConstructed bool
}

// NewProduct creates a new Product with validation. This is the only way,
// besides RestoreProduct, to obtain a valid Product.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - producerID: Owning producer profile (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - description: Optional free text
//   - priceYenPerKg: Unit price (must not be negative)
//   - stockKg: Initial stock quantity (must not be negative)
//
// Returns:
//   - *Product: The created product, marked available
//   - error: Validation error if any parameter is invalid
func NewProduct(
	id kernel.UUID,
	producerID kernel.UUID,
	name string,
	description string,
	priceYenPerKg decimal.Decimal,
	stockKg decimal.Decimal,
) (*Product, error) {
	p := &Product{
		description:   description,
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setProducerID(producerID),
		p.setName(name),
		p.setPriceYenPerKg(priceYenPerKg),
		p.setStockKg(stockKg),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including its
// availability flag. The same invariants as NewProduct apply.
func RestoreProduct(
	id kernel.UUID,
	producerID kernel.UUID,
	name string,
	description string,
	priceYenPerKg decimal.Decimal,
	stockKg decimal.Decimal,
	available bool,
) (*Product, error) {
	p, err := NewProduct(id, producerID, name, description, priceYenPerKg, stockKg)
	if err != nil {
		return nil, err
	}

	p.available = available
	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// ProducerID returns the owning producer profile's identifier.
func (p *Product) ProducerID() kernel.UUID {
	return p.producerID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's free-text description.
func (p *Product) Description() string {
	return p.description
}

// PriceYenPerKg returns the current unit price in yen per kilogram.
func (p *Product) PriceYenPerKg() decimal.Decimal {
	return p.priceYenPerKg
}

// StockKg returns the available stock quantity in kilograms.
func (p *Product) StockKg() decimal.Decimal {
	return p.stockKg
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// MarkUnavailable removes the product from sale without deleting it.
func (p *Product) MarkUnavailable() {
	p.available = false
}

// MarkAvailable returns the product to sale.
func (p *Product) MarkAvailable() {
	p.available = true
}

// DeductStock removes quantityKg from the stock.
//
// Business rules:
//   - quantityKg must be positive
//   - The resulting stock must not be negative; otherwise the deduction is
//     rejected with an InsufficientStockError and the stock is left untouched
//
// Returns:
//   - nil on success
//   - error if the quantity is invalid or stock is insufficient
func (p *Product) DeductStock(quantityKg decimal.Decimal) error {
	if !quantityKg.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantityKg",
			fmt.Errorf("%s is not greater than 0", quantityKg))
	}

	if p.stockKg.LessThan(quantityKg) {
		return NewInsufficientStockError(p.name, quantityKg, p.stockKg)
	}

	p.stockKg = p.stockKg.Sub(quantityKg)
	return nil
}

// RestoreStock returns quantityKg to the stock, used when a confirmed order
// is cancelled by the producer.
//
// Returns:
//   - nil on success
//   - error if the quantity is not positive
func (p *Product) RestoreStock(quantityKg decimal.Decimal) error {
	if !quantityKg.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantityKg",
			fmt.Errorf("%s is not greater than 0", quantityKg))
	}

	p.stockKg = p.stockKg.Add(quantityKg)
	return nil
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setProducerID validates and sets the owning producer reference.
// This is a private method used only during construction.
func (p *Product) setProducerID(producerID kernel.UUID) error {
	if err := producerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("producerID", err)
	}
	p.producerID = producerID
	return nil
}

// setName validates and sets the product name.
// This is a private method used only during construction.
func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setPriceYenPerKg validates and sets the unit price.
// This is a private method used only during construction.
func (p *Product) setPriceYenPerKg(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("priceYenPerKg",
			fmt.Errorf("%s is negative", price))
	}
	p.priceYenPerKg = price
	return nil
}

// setStockKg validates and sets the stock quantity.
// This is a private method used only during construction.
func (p *Product) setStockKg(stockKg decimal.Decimal) error {
	if stockKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("stockKg",
			fmt.Errorf("%s is negative", stockKg))
	}
	p.stockKg = stockKg
	return nil
}
