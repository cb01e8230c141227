package services

import (
	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/producer"
	"ricemarket/internal/core/domain/model/product"
)

// DeliveryZoneFilter is a domain service that narrows a product listing down
// to the products whose producer delivers to a given consumer location.
//
// Business rules:
//   - A producer without a complete delivery zone (base location and radius)
//     delivers nowhere, so their products are filtered out.
//   - A product whose producer is not in the provided set is filtered out.
//   - The zone check is made once per producer, not once per product.
//
// Example usage:
//
//	filter := services.NewDeliveryZoneFilter()
//	reachable := filter.Filter(products, producers, consumerLocation)
type DeliveryZoneFilter struct{}

// NewDeliveryZoneFilter creates a new DeliveryZoneFilter instance.
//
// Returns:
//   - DeliveryZoneFilter: A new instance ready for filtering operations
func NewDeliveryZoneFilter() DeliveryZoneFilter {
	return DeliveryZoneFilter{}
}

// Filter returns the products whose producer delivers to the given point.
//
// Parameters:
//   - products: candidate products, typically every available product
//   - producers: the producers of the candidate products, keyed by their own ID
//   - point: the consumer's location
//
// Returns:
//   - []*product.Product: products deliverable to the point, in input order
//
// The zone decision is computed once per distinct producer and reused for all
// of that producer's products.
func (f DeliveryZoneFilter) Filter(
	products []*product.Product,
	producers map[kernel.UUID]*producer.Producer,
	point kernel.GeoPoint,
) []*product.Product {
	decisions := make(map[kernel.UUID]bool, len(producers))
	result := make([]*product.Product, 0, len(products))

	for _, p := range products {
		if err := p.Validate(); err != nil {
			continue
		}

		delivers, decided := decisions[p.ProducerID()]
		if !decided {
			prod, found := producers[p.ProducerID()]
			delivers = found && prod.DeliversTo(point)
			decisions[p.ProducerID()] = delivers
		}

		if delivers {
			result = append(result, p)
		}
	}

	return result
}
