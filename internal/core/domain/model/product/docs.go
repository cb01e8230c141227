// Package product provides the Product aggregate of the marketplace catalog.
//
// A product is owned by a producer and carries a mutable stock quantity in
// kilograms plus a price in yen per kilogram. The only stock mutations allowed
// are order confirmation (deduction) and cancellation after confirmation
// (restoration); both go through validated methods that keep the stock
// quantity non-negative.
package product
