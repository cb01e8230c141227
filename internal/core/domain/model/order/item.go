package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/errs"
	"ricemarket/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New(
	"item is not constructed: use NewItem or RestoreItem")

// Item is a single line of an order. The product's name and per-kilogram
// price are snapshotted at ordering time so the line survives later price
// changes and even product deletion, in which case the product reference
// is cleared while the snapshot stays intact.
//
// Item is a value object: once constructed it never changes, except for
// detaching the product reference when the product is removed.
type Item struct {
	productID             *kernel.UUID
	nameSnapshot          string
	priceYenPerKgSnapshot decimal.Decimal
	quantityKg            decimal.Decimal
	totalYen              decimal.Decimal

	guard.ConstructorGuard
}

// NewItem creates an order line for a product at ordering time.
// The line total is computed as quantityKg * priceYenPerKgSnapshot.
//
// Parameters:
//   - productID: identifier of the ordered product.
//   - nameSnapshot: the product's name at ordering time.
//   - priceYenPerKgSnapshot: the product's price at ordering time.
//   - quantityKg: ordered quantity, must be positive.
//
// Returns:
//   - Item: the constructed order line.
//   - error: validation error if any input is invalid.
func NewItem(
	productID kernel.UUID,
	nameSnapshot string,
	priceYenPerKgSnapshot decimal.Decimal,
	quantityKg decimal.Decimal,
) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("productID", err)
	}
	if nameSnapshot == "" {
		return Item{}, errs.NewValueIsRequiredError("nameSnapshot")
	}
	if priceYenPerKgSnapshot.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("priceYenPerKgSnapshot")
	}
	if !quantityKg.IsPositive() {
		return Item{}, errs.NewValueIsInvalidError("quantityKg")
	}

	return Item{
		productID:             &productID,
		nameSnapshot:          nameSnapshot,
		priceYenPerKgSnapshot: priceYenPerKgSnapshot,
		quantityKg:            quantityKg,
		totalYen:              quantityKg.Mul(priceYenPerKgSnapshot),
		ConstructorGuard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an order line from persistence without
// recomputing the total. A nil productID marks a line whose product was
// deleted after the order was placed.
func RestoreItem(
	productID *kernel.UUID,
	nameSnapshot string,
	priceYenPerKgSnapshot decimal.Decimal,
	quantityKg decimal.Decimal,
	totalYen decimal.Decimal,
) (Item, error) {
	if nameSnapshot == "" {
		return Item{}, errs.NewValueIsRequiredError("nameSnapshot")
	}

	return Item{
		productID:             productID,
		nameSnapshot:          nameSnapshot,
		priceYenPerKgSnapshot: priceYenPerKgSnapshot,
		quantityKg:            quantityKg,
		totalYen:              totalYen,
		ConstructorGuard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Item was properly constructed.
func (i Item) Validate() error {
	return i.ConstructorGuard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product, or nil if the product was
// deleted after the order was placed.
func (i Item) ProductID() *kernel.UUID {
	return i.productID
}

// NameSnapshot returns the product name captured at ordering time.
func (i Item) NameSnapshot() string {
	return i.nameSnapshot
}

// PriceYenPerKgSnapshot returns the per-kilogram price captured at
// ordering time.
func (i Item) PriceYenPerKgSnapshot() decimal.Decimal {
	return i.priceYenPerKgSnapshot
}

// QuantityKg returns the ordered quantity in kilograms.
func (i Item) QuantityKg() decimal.Decimal {
	return i.quantityKg
}

// TotalYen returns the line total in yen.
func (i Item) TotalYen() decimal.Decimal {
	return i.totalYen
}
