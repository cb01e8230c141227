// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the rice marketplace. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryZoneFilter: A domain service for selecting products whose
//     producers deliver to a given location
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
