// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root holding the consumer/producer references,
//     immutable item snapshots, the delivery address snapshot, and the total
//   - Item: A value object snapshotting product name and unit price at order time
//   - Status: The lifecycle state machine with a table-driven transition map
//
// Key business rules:
//   - The order total always equals the sum of its items' line totals at creation
//   - Item snapshots are immutable; later product edits never alter order history
//   - Status transitions are enumerated in a single table keyed by (from, to)
//     and gated by the acting role; everything not in the table is rejected
//   - Only the order's consumer may cancel, and only while the order is still
//     pending confirmation; all other transitions belong to the order's producer
//
// Stock side effects of a transition are exposed via StockEffectOf so that the
// application layer can apply inventory changes within its transaction.
package order
