// Package producer provides the Producer profile aggregate.
//
// A producer is the seller side of the marketplace: it owns products, receives
// orders, and optionally advertises a delivery zone as a base coordinate plus
// a radius in kilometers. The delivery-zone check fails closed: a producer
// without a complete zone definition delivers nowhere.
package producer

import (
	"errors"
	"fmt"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProducerIsNotConstructed is returned when a Producer instance was not
// created through the NewProducer or RestoreProducer factory methods.
var ErrProducerIsNotConstructed = errors.New("Producer must be created via NewProducer or RestoreProducer")

// Producer represents a seller profile.
//
// Producer follows these invariants:
//   - Must have a valid unique identifier and a valid user reference
//   - Delivery radius, when set, must be positive
//   - The base location, when set, is a validated GeoPoint
//   - Can only be created through NewProducer or RestoreProducer
type Producer struct {
	// id is the unique identifier of the producer profile
	id kernel.UUID

	// userID references the user account behind the profile.
	// Notifications for this producer are delivered to that user.
	userID kernel.UUID

	// businessName is the optional display name of the farm or business
	businessName string

	// baseLocation is the optional base coordinate of the producer
	baseLocation *kernel.GeoPoint

	// deliveryRadiusKm is the optional delivery radius around baseLocation
	deliveryRadiusKm *decimal.Decimal

	// isConstructed ensures the producer was created via a factory method
	isConstructed bool
}

// NewProducer creates a new Producer profile without a delivery zone.
//
// Returns:
//   - *Producer: The created profile
//   - error: Validation error if either id is invalid
func NewProducer(id kernel.UUID, userID kernel.UUID, businessName string) (*Producer, error) {
	p := &Producer{
		businessName:  businessName,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProducer reconstructs a Producer from persistence, including its
// optional delivery zone. The zone parameters may each be nil.
func RestoreProducer(
	id kernel.UUID,
	userID kernel.UUID,
	businessName string,
	baseLocation *kernel.GeoPoint,
	deliveryRadiusKm *decimal.Decimal,
) (*Producer, error) {
	p, err := NewProducer(id, userID, businessName)
	if err != nil {
		return nil, err
	}

	if baseLocation != nil {
		if err = baseLocation.Validate(); err != nil {
			return nil, err
		}
		p.baseLocation = baseLocation
	}
	if deliveryRadiusKm != nil {
		if err = p.setDeliveryRadiusKm(*deliveryRadiusKm); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate ensures the Producer instance was properly constructed.
func (p *Producer) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProducerIsNotConstructed
	}
	return nil
}

// IsEqual compares two producers by their unique identifiers.
func (p *Producer) IsEqual(other *Producer) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the producer profile's unique identifier.
func (p *Producer) ID() kernel.UUID {
	return p.id
}

// UserID returns the user account behind the profile.
func (p *Producer) UserID() kernel.UUID {
	return p.userID
}

// BusinessName returns the optional display name.
func (p *Producer) BusinessName() string {
	return p.businessName
}

// BaseLocation returns the producer's base coordinate, or nil if unset.
func (p *Producer) BaseLocation() *kernel.GeoPoint {
	return p.baseLocation
}

// DeliveryRadiusKm returns the delivery radius in kilometers, or nil if unset.
func (p *Producer) DeliveryRadiusKm() *decimal.Decimal {
	return p.deliveryRadiusKm
}

// SetDeliveryZone sets the base coordinate and delivery radius together.
// The radius must be positive.
func (p *Producer) SetDeliveryZone(baseLocation kernel.GeoPoint, radiusKm decimal.Decimal) error {
	if err := baseLocation.Validate(); err != nil {
		return err
	}
	if err := p.setDeliveryRadiusKm(radiusKm); err != nil {
		return err
	}

	p.baseLocation = &baseLocation
	return nil
}

// DeliversTo reports whether the producer delivers to the given point.
//
// Business rules:
//   - False unless both the base location and the delivery radius are set
//   - True iff the great-circle distance from the base location to the point
//     does not exceed the radius
//
// The check never fails with an error: a producer with an incomplete zone is
// simply out of range.
func (p *Producer) DeliversTo(point kernel.GeoPoint) bool {
	if p.baseLocation == nil || p.deliveryRadiusKm == nil {
		return false
	}

	distance, err := p.baseLocation.DistanceKm(point)
	if err != nil {
		return false
	}

	return decimal.NewFromFloat(distance).LessThanOrEqual(*p.deliveryRadiusKm)
}

// setID validates and sets the profile's unique identifier.
// This is a private method used only during construction.
func (p *Producer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setUserID validates and sets the user account reference.
// This is a private method used only during construction.
func (p *Producer) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	p.userID = userID
	return nil
}

// setDeliveryRadiusKm validates and sets the delivery radius.
func (p *Producer) setDeliveryRadiusKm(radiusKm decimal.Decimal) error {
	if !radiusKm.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryRadiusKm",
			fmt.Errorf("%s is not greater than 0", radiusKm))
	}
	p.deliveryRadiusKm = &radiusKm
	return nil
}
