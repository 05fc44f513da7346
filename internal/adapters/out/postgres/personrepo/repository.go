package personrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/deliveryperson"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// GormDeliveryPersonRepository implements DeliveryPersonRepository using GORM.
type GormDeliveryPersonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryPersonRepository creates a new GORM delivery person repository.
func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery person to the database. A duplicate phone number
// surfaces as a ValueIsInvalidError rather than a bare driver error.
func (r *GormDeliveryPersonRepository) Add(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("phone", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery person to the database.
func (r *GormDeliveryPersonRepository) Update(ctx context.Context, aggregate *deliveryperson.DeliveryPerson) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryPersonDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
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

// Get retrieves a delivery person by ID.
func (r *GormDeliveryPersonRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*deliveryperson.DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery person", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every delivery person, sorted by name.
func (r *GormDeliveryPersonRepository) GetAll(ctx context.Context) ([]*deliveryperson.DeliveryPerson, error) {
	var dtos []DeliveryPersonDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	persons := make([]*deliveryperson.DeliveryPerson, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}

	return persons, nil
}
