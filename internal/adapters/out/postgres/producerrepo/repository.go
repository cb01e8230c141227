package producerrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ricemarket/internal/core/domain/model/kernel"
	"ricemarket/internal/core/domain/model/producer"
	"ricemarket/internal/pkg/errs"
)

// GormProducerRepository implements ProducerRepository using GORM.
type GormProducerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProducerRepository creates a new GORM producer repository.
func NewGormProducerRepository(db *gorm.DB, tracker aggregateTracker) *GormProducerRepository {
	return &GormProducerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new producer profile to the database.
func (r *GormProducerRepository) Add(ctx context.Context, aggregate *producer.Producer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing producer profile to the database.
func (r *GormProducerRepository) Update(ctx context.Context, aggregate *producer.Producer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProducerDTO{}).
		Where("id = ?", dto.ID).
		Select("BusinessName", "BaseLatitude", "BaseLongitude", "DeliveryRadiusKm").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a producer profile by ID.
func (r *GormProducerRepository) Get(ctx context.Context, id kernel.UUID) (*producer.Producer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProducerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("producer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUser retrieves the producer profile belonging to a user.
func (r *GormProducerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*producer.Producer, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ProducerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("producer", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the producers for a set of identifiers, keyed by ID.
func (r *GormProducerRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*producer.Producer, error) {
	producers := make(map[kernel.UUID]*producer.Producer, len(ids))
	if len(ids) == 0 {
		return producers, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProducerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		producers[aggregate.ID()] = aggregate
	}

	return producers, nil
}
