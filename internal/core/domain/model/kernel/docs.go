// Package kernel provides shared value objects used across all domain
// aggregates of the marketplace.
//
// The package includes:
//   - UUID: A validated unique identifier wrapping github.com/google/uuid
//   - GeoPoint: A geographic coordinate pair with great-circle distance math
//
// All value objects in this package are immutable, created through validating
// constructors, and safe for concurrent use.
package kernel
